// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli_test.go - Tests for CLI argument parsing and command routing.
package cli

import (
	"testing"
)

// =============================================================================
// COMMAND ROUTING
// =============================================================================

func TestParseArgs_CommandRouting(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Command
	}{
		{"no args defaults to TUI", nil, CmdTUI},
		{"explicit tui", []string{"tui"}, CmdTUI},
		{"ask", []string{"ask", "best", "phone"}, CmdAsk},
		{"chat", []string{"chat"}, CmdChat},
		{"products", []string{"products"}, CmdProducts},
		{"phones alias", []string{"phones"}, CmdProducts},
		{"compare", []string{"compare", "1", "2"}, CmdCompare},
		{"health", []string{"health"}, CmdHealth},
		{"config", []string{"config", "show"}, CmdConfig},
		{"version", []string{"version"}, CmdVersion},
		{"version flag", []string{"--version"}, CmdVersion},
		{"help", []string{"help"}, CmdHelp},
		{"help flag", []string{"--help"}, CmdHelp},
		{"short help flag", []string{"-h"}, CmdHelp},
		{"bare question falls through to ask", []string{"best", "gaming", "phone"}, CmdAsk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := parseArgs(tt.args)
			if cmd != tt.want {
				t.Errorf("parseArgs(%v) = %v, want %v", tt.args, cmd, tt.want)
			}
		})
	}
}

func TestParseArgs_AskQuery(t *testing.T) {
	_, args := parseArgs([]string{"ask", "best", "camera", "phone"})
	if args.Query != "best camera phone" {
		t.Errorf("Query = %q, want %q", args.Query, "best camera phone")
	}
}

func TestParseArgs_BareQuestionQuery(t *testing.T) {
	cmd, args := parseArgs([]string{"best", "phone", "under", "30000"})
	if cmd != CmdAsk {
		t.Fatalf("cmd = %v, want CmdAsk", cmd)
	}
	if args.Query != "best phone under 30000" {
		t.Errorf("Query = %q, want %q", args.Query, "best phone under 30000")
	}
}

func TestParseArgs_Subcommand(t *testing.T) {
	_, args := parseArgs([]string{"products", "brand", "Samsung"})
	if args.Subcommand != "brand" {
		t.Errorf("Subcommand = %q, want %q", args.Subcommand, "brand")
	}
	if len(args.Raw) != 2 || args.Raw[1] != "Samsung" {
		t.Errorf("Raw = %v, want [brand Samsung]", args.Raw)
	}
}

// =============================================================================
// GLOBAL FLAGS
// =============================================================================

func TestParseGlobalFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantQuiet   bool
		wantVerbose bool
		wantJSON    bool
		wantBaseURL string
		wantRest    int
	}{
		{"quiet short", []string{"-q", "health"}, true, false, false, "", 1},
		{"quiet long", []string{"--quiet", "health"}, true, false, false, "", 1},
		{"verbose", []string{"-v", "ask", "hi"}, false, true, false, "", 2},
		{"json", []string{"--json", "health"}, false, false, true, "", 1},
		{"api url separate", []string{"--api-url", "http://x:9/api/v1", "health"}, false, false, false, "http://x:9/api/v1", 1},
		{"api url equals", []string{"--api-url=http://x:9/api/v1", "health"}, false, false, false, "http://x:9/api/v1", 1},
		{"no flags", []string{"products"}, false, false, false, "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, parsed := parseGlobalFlags(tt.args)
			if parsed.Quiet != tt.wantQuiet {
				t.Errorf("Quiet = %v, want %v", parsed.Quiet, tt.wantQuiet)
			}
			if parsed.Verbose != tt.wantVerbose {
				t.Errorf("Verbose = %v, want %v", parsed.Verbose, tt.wantVerbose)
			}
			if parsed.JSON != tt.wantJSON {
				t.Errorf("JSON = %v, want %v", parsed.JSON, tt.wantJSON)
			}
			if parsed.BaseURL != tt.wantBaseURL {
				t.Errorf("BaseURL = %q, want %q", parsed.BaseURL, tt.wantBaseURL)
			}
			if len(rest) != tt.wantRest {
				t.Errorf("remaining = %v, want %d entries", rest, tt.wantRest)
			}
		})
	}
}
