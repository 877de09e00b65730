// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Generic argument parsing for CLI subcommands.
//
// Subcommands like "products" carry their own flags (--brand, --max-price)
// on top of the global ones. ArgParser handles both --flag value and
// --flag=value forms without reaching for a full flag framework.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// ArgParser parses subcommand arguments into flags and positionals.
type ArgParser struct {
	flags      map[string]string
	boolFlags  map[string]bool
	positional []string
}

// ParseSubArgs parses a subcommand's argument list.
//
// boolNames lists the flags that take no value; everything else starting
// with "--" is assumed to consume the next argument.
func ParseSubArgs(args []string, boolNames ...string) *ArgParser {
	p := &ArgParser{
		flags:     make(map[string]string),
		boolFlags: make(map[string]bool),
	}

	isBool := make(map[string]bool, len(boolNames))
	for _, n := range boolNames {
		isBool[n] = true
	}

	i := 0
	for i < len(args) {
		arg := args[i]
		switch {
		case strings.HasPrefix(arg, "--") && strings.Contains(arg, "="):
			parts := strings.SplitN(strings.TrimPrefix(arg, "--"), "=", 2)
			p.flags[parts[0]] = parts[1]

		case strings.HasPrefix(arg, "--"):
			name := strings.TrimPrefix(arg, "--")
			if isBool[name] {
				p.boolFlags[name] = true
			} else if i+1 < len(args) {
				p.flags[name] = args[i+1]
				i++
			} else {
				p.boolFlags[name] = true
			}

		default:
			p.positional = append(p.positional, arg)
		}
		i++
	}

	return p
}

// String returns a string flag value, or def if unset.
func (p *ArgParser) String(name, def string) string {
	if v, ok := p.flags[name]; ok {
		return v
	}
	return def
}

// Int returns an integer flag value, or def if unset or unparseable.
func (p *ArgParser) Int(name string, def int) int {
	v, ok := p.flags[name]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Float returns a float flag value, or def if unset or unparseable.
func (p *ArgParser) Float(name string, def float64) float64 {
	v, ok := p.flags[name]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// Bool reports whether a boolean flag was set.
func (p *ArgParser) Bool(name string) bool {
	return p.boolFlags[name]
}

// Positional returns the positional arguments in order.
func (p *ArgParser) Positional() []string {
	return p.positional
}

// PositionalInts parses every positional argument as an integer.
func (p *ArgParser) PositionalInts() ([]int, error) {
	ids := make([]int, 0, len(p.positional))
	for _, a := range p.positional {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: expected a number", a)
		}
		ids = append(ids, n)
	}
	return ids, nil
}
