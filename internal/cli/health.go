// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// health.go - Service health command handler for phonewise CLI.
//
// CLI: Comprehensive help and examples for all commands
//
// Handles "phonewise health": one request to the service's /health
// endpoint, exit code 0 when healthy, 1 otherwise, so it composes in
// scripts and readiness probes.
//
// Examples:
//   phonewise health
//   phonewise health --json
//   phonewise health --api-url http://10.0.0.5:8000/api/v1
package cli

import (
	"context"
	"fmt"
	"time"
)

// healthTimeout bounds the health probe.
const healthTimeout = 5 * time.Second

// HandleHealth handles the "health" command.
func HandleHealth(args Args) error {
	client := newClient(args)
	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	health, err := client.CheckHealth(ctx)
	if err != nil {
		if args.JSON {
			_ = outputJSON(map[string]any{"status": "down", "error": err.Error()})
		}
		return fmt.Errorf("assistant service unreachable at %s: %w", client.BaseURL(), err)
	}

	if args.JSON {
		return outputJSON(health)
	}

	fmt.Printf("%s %s\n", RenderStatus(health.Status), DimStyle.Render(client.BaseURL()))
	fmt.Printf("%s %v\n", LabelStyle.Render("Model"), health.ModelLoaded)
	fmt.Printf("%s %v\n", LabelStyle.Render("Database"), health.DatabaseConnected)
	if health.Version != "" {
		fmt.Printf("%s %s\n", LabelStyle.Render("Version"), health.Version)
	}

	if !health.OK() {
		return fmt.Errorf("service reports status %q", health.Status)
	}
	return nil
}
