package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/soni-n14/V-Pet-SLC-Zoom/internal/game"
	"github.com/soni-n14/V-Pet-SLC-Zoom/internal/pet"
	"github.com/soni-n14/V-Pet-SLC-Zoom/internal/sched"
	"github.com/soni-n14/V-Pet-SLC-Zoom/internal/store"
	"github.com/soni-n14/V-Pet-SLC-Zoom/internal/ui"
)

func main() {
	var (
		backend   = flag.String("store", "file", "persistence backend: file, sqlite, or redis")
		savePath  = flag.String("save", "", "save file / database path (file and sqlite backends)")
		redisAddr = flag.String("redis", "localhost:6379", "redis address (redis backend)")
		archetype = flag.String("pet", "dog", "pet archetype: dog, cat, parrot, or rabbit")
		name      = flag.String("name", "Biscuit", "pet name")
		logPath   = flag.String("log", "", "write logs to this file instead of discarding them")
	)
	flag.Parse()

	// The terminal belongs to the UI; logs go to a file or nowhere.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	st, err := openStore(*backend, *savePath, *redisAddr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open store: %v\n", err)
		os.Exit(1)
	}

	session, err := game.Open(context.Background(), st, pet.Archetype(*archetype), *name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "start session: %v\n", err)
		os.Exit(1)
	}
	defer session.Close()

	session.StartTimers(sched.NewTicker())

	program := tea.NewProgram(ui.NewModel(session))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		os.Exit(1)
	}
}

func openStore(backend, savePath, redisAddr string) (store.Store, error) {
	switch backend {
	case "file":
		if savePath == "" {
			var err error
			savePath, err = store.DefaultSavePath()
			if err != nil {
				return nil, err
			}
		}
		return store.NewFileStore(savePath)
	case "sqlite":
		if savePath == "" {
			base, err := store.DefaultSavePath()
			if err != nil {
				return nil, err
			}
			savePath = base + ".db"
		}
		return store.NewSQLiteStore(savePath)
	case "redis":
		return store.NewRedisStore(context.Background(), redisAddr)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
