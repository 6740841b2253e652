package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kleyson/appz-budget/internal/api"
	"github.com/kleyson/appz-budget/internal/config"
	"github.com/kleyson/appz-budget/internal/logging"
	"github.com/kleyson/appz-budget/internal/tui"
)

var version = "dev"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		if path, perr := config.Path(); perr == nil {
			fmt.Fprintf(os.Stderr, "edit or delete %s and start again\n", path)
		}
		os.Exit(1)
	}

	dir, err := config.Dir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config dir: %v\n", err)
		os.Exit(1)
	}
	log, closeLog, err := logging.OpenFile(filepath.Join(dir, "budget-tui.log"), logging.ParseLevel(cfg.Log.Level))
	if err != nil {
		fmt.Fprintf(os.Stderr, "log: %v\n", err)
		log, closeLog = logging.Discard(), func() error { return nil }
	}
	defer closeLog()
	log.Info("starting", "version", version, "server", cfg.Server.URL, "config", cfg.Location())

	newClient := func(url, apiKey string) *api.Client {
		return api.New(url, apiKey, api.WithLogger(log.WithComponent("api")), api.WithVersion(version))
	}

	p := tea.NewProgram(tui.New(ctx, cfg, newClient(cfg.Server.URL, cfg.Server.APIKey),
		tui.WithLogger(log.WithComponent("tui")),
		tui.WithClientFactory(newClient),
	), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("program exited", "err", err)
		fmt.Printf("error: %v\n", err)
	}
}
