// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// configcmd.go - Configuration command handler for phonewise CLI.
//
// CLI: Comprehensive help and examples for all commands
//
// Handles "phonewise config" with show/set/path subcommands. Keys use
// the TOML section dotted form, e.g. api.base_url or ui.theme.
//
// Examples:
//   phonewise config show
//   phonewise config set ui.theme light
//   phonewise config set api.base_url http://10.0.0.5:8000/api/v1
//   phonewise config path
package cli

import (
	"fmt"
	"strconv"

	"github.com/jeranaias/phonewise-tui/internal/config"
)

// HandleConfig handles the "config" command.
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "", "show":
		cfg := config.Global()
		if args.JSON {
			return outputJSON(cfg)
		}
		fmt.Println(TitleStyle.Render("phonewise configuration"))
		fmt.Print(cfg.String())
		return nil

	case "path":
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil

	case "set":
		rest := args.Raw[1:]
		if len(rest) != 2 {
			return fmt.Errorf("usage: phonewise config set KEY VALUE")
		}
		return setConfigValue(rest[0], rest[1])

	default:
		return fmt.Errorf("unknown config subcommand %q, expected show, set or path", args.Subcommand)
	}
}

// setConfigValue updates one key in the config file and saves it.
func setConfigValue(key, value string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}

	switch key {
	case "api.base_url":
		cfg.API.BaseURL = value
	case "api.timeout_secs":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s expects an integer, got %q", key, value)
		}
		cfg.API.TimeoutSecs = n
	case "api.max_retries":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s expects an integer, got %q", key, value)
		}
		cfg.API.MaxRetries = n
	case "api.rate_limit_rps":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s expects a number, got %q", key, value)
		}
		cfg.API.RateLimitRPS = f
	case "chat.history_limit":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s expects an integer, got %q", key, value)
		}
		cfg.Chat.HistoryLimit = n
	case "chat.max_cards":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s expects an integer, got %q", key, value)
		}
		cfg.Chat.MaxCards = n
	case "ui.theme":
		cfg.UI.Theme = value
	case "ui.compact_mode":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false, got %q", key, value)
		}
		cfg.UI.CompactMode = b
	case "ui.show_intents":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false, got %q", key, value)
		}
		cfg.UI.ShowIntents = b
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("cannot save config: %w", err)
	}

	fmt.Println(SuccessStyle.Render("Saved ") + DimStyle.Render(key+" = "+value))
	return nil
}
