// depot-tui - A terminal chat interface for the DataDepot QA service.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/jeranaias/depot-tui/internal/api"
	"github.com/jeranaias/depot-tui/internal/config"
	"github.com/jeranaias/depot-tui/internal/suggest"
	"github.com/jeranaias/depot-tui/internal/ui/chat"
	"github.com/jeranaias/depot-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to a config file (default ~/.depot-tui/config.toml)")
		apiURL      = flag.String("api-url", "", "DataDepot API base URL (overrides config and DEPOT_API_URL)")
		gaMode      = flag.Bool("ga", false, "start in analytics mode")
		debug       = flag.Bool("debug", false, "write a debug log to depot-tui.log")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("depot-tui %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	// A local .env is the easiest place to keep DEPOT_API_URL during
	// development; missing files are fine.
	_ = godotenv.Load()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *apiURL != "" {
		cfg.API.BaseURL = *apiURL
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	config.SetGlobal(cfg)

	if *debug {
		f, err := tea.LogToFile("depot-tui.log", "debug")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	client := api.NewClient(api.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: time.Duration(cfg.API.TimeoutSecs) * time.Second,
	})

	theme := styles.NewTheme()
	m := chat.New(theme, client, cfg)
	if *gaMode {
		m = m.WithMode(suggest.ModeGA)
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running depot-tui: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads from an explicit path when given, otherwise the default
// chain (file, env overrides, built-in defaults).
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}
