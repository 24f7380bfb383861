package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"safedh/internal/app"
)

var (
	home      string
	bits      int
	witnesses int

	appCtx *app.App
)

// Execute builds the command tree and runs it.
func Execute() error {
	root := &cobra.Command{
		Use:   "safedh",
		Short: "Diffie-Hellman key exchange over a freshly generated safe prime",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".safedh")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			appCtx = app.New(app.Config{
				Home:      home,
				Bits:      bits,
				Witnesses: witnesses,
			})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.safedh)")
	root.PersistentFlags().IntVar(&bits, "bits", 512, "safe prime bit length")
	root.PersistentFlags().IntVar(&witnesses, "witnesses", 5, "Miller-Rabin witness rounds")

	root.AddCommand(initCmd(), showCmd(), exchangeCmd())
	return root.Execute()
}
