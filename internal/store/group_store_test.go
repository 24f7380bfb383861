package store_test

import (
	"math/big"
	"testing"

	"safedh/internal/domain"
	"safedh/internal/store"
)

func TestGroupRoundTrip(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	want := domain.Group{
		P: big.NewInt(23),
		Q: big.NewInt(11),
		G: big.NewInt(2),
	}
	if err := s.SaveGroup(want); err != nil {
		t.Fatalf("SaveGroup: %v", err)
	}

	got, ok, err := s.LoadGroup()
	if err != nil {
		t.Fatalf("LoadGroup: %v", err)
	}
	if !ok {
		t.Fatal("LoadGroup: ok = false after save")
	}
	if got.P.Cmp(want.P) != 0 || got.Q.Cmp(want.Q) != 0 || got.G.Cmp(want.G) != 0 {
		t.Fatalf("LoadGroup = %+v, want %+v", got, want)
	}
}

func TestLoadGroupEmpty(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	_, ok, err := s.LoadGroup()
	if err != nil {
		t.Fatalf("LoadGroup: %v", err)
	}
	if ok {
		t.Fatal("LoadGroup reported a group in an empty dir")
	}
}
