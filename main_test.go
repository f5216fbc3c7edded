package main

import (
	"path/filepath"
	"testing"
)

func TestOpenStoreBackends(t *testing.T) {
	dir := t.TempDir()

	t.Run("file", func(t *testing.T) {
		st, err := openStore("file", filepath.Join(dir, "save.json"), "")
		if err != nil {
			t.Fatalf("openStore(file): %v", err)
		}
		st.Close()
	})

	t.Run("sqlite", func(t *testing.T) {
		st, err := openStore("sqlite", filepath.Join(dir, "save.db"), "")
		if err != nil {
			t.Fatalf("openStore(sqlite): %v", err)
		}
		st.Close()
	})

	t.Run("unknown backend", func(t *testing.T) {
		if _, err := openStore("carrier-pigeon", "", ""); err == nil {
			t.Fatal("expected an error for an unknown backend")
		}
	})
}
