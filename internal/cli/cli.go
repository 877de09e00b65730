// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command routing for phonewise.
//
// CLI: Comprehensive help and examples for all commands
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.3.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdProducts
	CmdCompare
	CmdHealth
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	JSON    bool   // Output in JSON format
	BaseURL string // Override the API base URL

	// Command-specific
	Query      string
	Subcommand string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `phonewise - terminal client for the phone shopping assistant

Phonewise is a conversational smartphone shopping assistant for the
terminal. It talks to the assistant REST API; all recommendation and
catalog logic lives on the server.

Usage:
  phonewise                    Start the chat TUI (default)
  phonewise ask "question"     Ask a single question
  phonewise chat               Interactive plain-terminal chat
  phonewise products           Browse the catalog
  phonewise compare ID ID...   Compare 2-4 phones side by side
  phonewise health             Check the assistant service
  phonewise config [show|set|path]  Configuration
  phonewise version            Show version information

Products Commands:
  phonewise products                List phones
    --brand NAME                    Filter by brand
    --max-price N                   Filter by maximum price (INR)
    --min-ram N                     Filter by minimum RAM (GB)
    --limit N                       Limit results (default: 20)
  phonewise products <id>           Show one phone in detail
  phonewise products search <text>  Natural-language catalog search
  phonewise products brand <name>   List phones by brand
  phonewise products category <c>   flagship, budget, gaming or camera
    --max-price N                   Budget cap for the category

Config Commands:
  phonewise config show             Show current configuration
  phonewise config set KEY VALUE    Set a value (api.base_url, ui.theme, ...)
  phonewise config path             Print the config file location

Global Flags:
  --api-url URL   Override the assistant API base URL
  --json          Output in JSON format
  -q, --quiet     Minimal output
  -v, --verbose   Debug output

Examples:
  phonewise                           Start the TUI
  phonewise ask "best camera phone under 50000"
  phonewise chat                      REPL with history and /commands
  phonewise products --brand Samsung --max-price 40000
  phonewise compare 3 7 12            Three-way comparison
  phonewise health --json             Service health for scripts

Interactive chat commands (phonewise chat):
  /help      Show available commands
  /history   Show the server-side transcript
  /new       Start a new session
  /clear     Clear the server-side transcript
  /quit      Exit (also Ctrl+D)

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("phonewise version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	return parseArgs(os.Args[1:])
}

// parseArgs is the testable core of Parse.
func parseArgs(args []string) (Command, Args) {
	remaining, parsed := parseGlobalFlags(args)

	// No remaining args: default to the TUI.
	if len(remaining) == 0 {
		return CmdTUI, parsed
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsed.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsed

	case "ask":
		parsed.Query = strings.Join(remaining, " ")
		return CmdAsk, parsed

	case "chat":
		return CmdChat, parsed

	case "products", "phones":
		if len(remaining) > 0 {
			parsed.Subcommand = remaining[0]
		}
		return CmdProducts, parsed

	case "compare":
		return CmdCompare, parsed

	case "health":
		return CmdHealth, parsed

	case "config":
		if len(remaining) > 0 {
			parsed.Subcommand = remaining[0]
		}
		return CmdConfig, parsed

	case "version", "--version":
		return CmdVersion, parsed

	case "help", "--help", "-h":
		return CmdHelp, parsed

	default:
		// Unknown word: treat the whole tail as an ask query, matching
		// how people naturally type "phonewise best gaming phone".
		parsed.Query = strings.TrimSpace(cmd + " " + strings.Join(remaining, " "))
		parsed.Raw = append([]string{cmd}, remaining...)
		return CmdAsk, parsed
	}
}

// parseGlobalFlags extracts global flags, returning the remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var parsed Args
	var remaining []string

	i := 0
	for i < len(args) {
		switch args[i] {
		case "-q", "--quiet":
			parsed.Quiet = true
		case "-v", "--verbose":
			parsed.Verbose = true
		case "--json":
			parsed.JSON = true
		case "--api-url":
			if i+1 < len(args) {
				parsed.BaseURL = args[i+1]
				i++
			}
		default:
			if strings.HasPrefix(args[i], "--api-url=") {
				parsed.BaseURL = strings.TrimPrefix(args[i], "--api-url=")
			} else {
				remaining = append(remaining, args[i])
			}
		}
		i++
	}

	return remaining, parsed
}
