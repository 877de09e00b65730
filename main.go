// phonewise TUI - A terminal client for the phone shopping assistant.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/phonewise-tui/internal/api"
	"github.com/jeranaias/phonewise-tui/internal/cli"
	"github.com/jeranaias/phonewise-tui/internal/config"
	"github.com/jeranaias/phonewise-tui/internal/session"
	"github.com/jeranaias/phonewise-tui/internal/store"
	"github.com/jeranaias/phonewise-tui/internal/ui/chat"
	"github.com/jeranaias/phonewise-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.3.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	setupLogging(args)

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdAsk:
		exitOnError(cli.HandleAsk(args))
	case cli.CmdChat:
		exitOnError(cli.HandleChat(args))
	case cli.CmdProducts:
		exitOnError(cli.HandleProducts(args))
	case cli.CmdCompare:
		exitOnError(cli.HandleCompare(args))
	case cli.CmdHealth:
		exitOnError(cli.HandleHealth(args))
	case cli.CmdConfig:
		exitOnError(cli.HandleConfig(args))
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	default:
		runTUI(args)
	}
}

// exitOnError prints the error and exits non-zero, the usual CLI contract.
func exitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// setupLogging routes the operator log to ~/.phonewise/phonewise.log.
// Stdout and stderr belong to the UI; log output on them would corrupt
// the alternate screen. With --verbose the log also goes to stderr for
// the plain CLI commands.
func setupLogging(args cli.Args) {
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)

	path, err := config.LogPath()
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	if err := config.EnsureConfigDir(); err != nil {
		log.SetOutput(io.Discard)
		return
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}

	if args.Verbose {
		log.SetOutput(io.MultiWriter(f, os.Stderr))
		return
	}
	log.SetOutput(f)
}

// runTUI starts the full-screen chat interface.
func runTUI(args cli.Args) {
	cfg := config.Global()
	if args.BaseURL != "" {
		cfg.API.BaseURL = args.BaseURL
	}

	// Session id persists across runs in ~/.phonewise/session.json.
	sessionPath, err := config.SessionPath()
	if err != nil {
		exitOnError(fmt.Errorf("cannot resolve session path: %w", err))
	}
	sessions := session.NewStore(sessionPath)
	if err := sessions.Init(); err != nil {
		// The TUI still starts; sends are blocked until a session
		// exists, and the failure is in the operator log.
		log.Printf("main: session init failed: %v", err)
	}

	client := api.NewClient(cfg.API.BaseURL).
		WithTimeout(cfg.API.Timeout()).
		WithMaxRetries(cfg.API.MaxRetries).
		WithRateLimit(cfg.API.RateLimitRPS)

	theme := styles.NewTheme(cfg.UI.Theme)
	m := chat.New(theme, client, sessions, store.NewChatStore())

	// Live-reload the config file so theme or API edits apply on the
	// next restart of the program loop without killing the session.
	if configPath, err := config.ConfigPath(); err == nil {
		watcher, err := config.NewWatcher(configPath, func(*config.Config) {
			log.Printf("main: configuration reloaded from %s", configPath)
		})
		if err == nil {
			if err := watcher.Watch(); err != nil {
				log.Printf("main: config watcher failed to start: %v", err)
			}
			defer watcher.Close()
		}
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		exitOnError(fmt.Errorf("TUI error: %w", err))
	}
}
