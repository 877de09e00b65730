// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args_test.go - Tests for subcommand argument parsing and formatting.
package cli

import (
	"testing"
)

// =============================================================================
// SUBCOMMAND FLAG PARSING
// =============================================================================

func TestParseSubArgs_Flags(t *testing.T) {
	p := ParseSubArgs([]string{"--brand", "Samsung", "--max-price=40000", "--limit", "5"})

	if got := p.String("brand", ""); got != "Samsung" {
		t.Errorf("brand = %q, want Samsung", got)
	}
	if got := p.Int("max-price", 0); got != 40000 {
		t.Errorf("max-price = %d, want 40000", got)
	}
	if got := p.Int("limit", 20); got != 5 {
		t.Errorf("limit = %d, want 5", got)
	}
	if got := p.Int("min-ram", 8); got != 8 {
		t.Errorf("min-ram default = %d, want 8", got)
	}
}

func TestParseSubArgs_BoolFlags(t *testing.T) {
	p := ParseSubArgs([]string{"--all", "--brand", "Apple"}, "all")

	if !p.Bool("all") {
		t.Error("all should be set")
	}
	if p.Bool("missing") {
		t.Error("missing should not be set")
	}
	if got := p.String("brand", ""); got != "Apple" {
		t.Errorf("brand = %q, want Apple", got)
	}
}

func TestParseSubArgs_TrailingFlagWithoutValue(t *testing.T) {
	// A value-taking flag at the end of the line degrades to a bool
	// rather than panicking.
	p := ParseSubArgs([]string{"--brand"})
	if !p.Bool("brand") {
		t.Error("trailing flag should be recorded as bool")
	}
}

func TestParseSubArgs_Positional(t *testing.T) {
	p := ParseSubArgs([]string{"3", "--brand", "X", "7", "12"})

	got := p.Positional()
	want := []string{"3", "7", "12"}
	if len(got) != len(want) {
		t.Fatalf("positional = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("positional[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPositionalInts(t *testing.T) {
	p := ParseSubArgs([]string{"3", "7", "12"})
	ids, err := p.PositionalInts()
	if err != nil {
		t.Fatalf("PositionalInts: %v", err)
	}
	if len(ids) != 3 || ids[0] != 3 || ids[1] != 7 || ids[2] != 12 {
		t.Errorf("ids = %v, want [3 7 12]", ids)
	}
}

func TestPositionalInts_Invalid(t *testing.T) {
	p := ParseSubArgs([]string{"3", "seven"})
	if _, err := p.PositionalInts(); err == nil {
		t.Error("expected error for non-numeric id")
	}
}
