package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/readerline/readerline/internal/app"
	"github.com/readerline/readerline/internal/content"
	"github.com/readerline/readerline/internal/library"
	"github.com/readerline/readerline/internal/llm"
	"github.com/readerline/readerline/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	logger, closeLog := newFileLogger(dbPath)
	defer closeLog()

	var generator content.Generator
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "New passages cannot be generated; stored ones remain readable.")
	} else {
		generator = content.New(provider, content.DefaultConfig())
	}

	lib := library.New(st.PassageRepo(), st.AttemptRepo(), generator, logger)

	return app.Run(app.Options{
		Attempts: st.AttemptRepo(),
		Readers:  st.ReaderRepo(),
		Library:  lib,
		Logger:   logger,
	})
}

// newFileLogger writes structured logs next to the database so they
// never bleed into the alternate screen. Falls back to a discarding
// logger if the file cannot be opened.
func newFileLogger(dbPath string) (*log.Logger, func()) {
	path := filepath.Join(filepath.Dir(dbPath), "readerline.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{ReportTimestamp: true})
	return logger, func() { f.Close() }
}
