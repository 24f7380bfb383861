package app

import (
	"crypto/rand"
	"io"

	"safedh/internal/domain"
	"safedh/internal/numtheory"
	"safedh/internal/services/exchange"
	"safedh/internal/store"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string    // state directory, e.g. $HOME/.safedh
	Bits      int       // safe-prime size; exchange.DefaultBits when zero
	Witnesses int       // Miller-Rabin rounds; numtheory default when zero
	Rand      io.Reader // entropy source; crypto/rand.Reader when nil
	Progress  numtheory.Progress
}

// App bundles the store and services used by the commands.
type App struct {
	Groups   domain.GroupStore
	Exchange *exchange.Service
	Bits     int
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	r := cfg.Rand
	if r == nil {
		r = rand.Reader
	}
	bits := cfg.Bits
	if bits <= 0 {
		bits = exchange.DefaultBits
	}
	opts := numtheory.Options{
		Rounds:   cfg.Witnesses,
		Progress: cfg.Progress,
	}
	return &App{
		Groups:   store.NewFileStore(cfg.Home),
		Exchange: exchange.New(r, opts),
		Bits:     bits,
	}
}
