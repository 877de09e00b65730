// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// helpers.go - Shared helpers for phonewise CLI commands.
//
// Client construction, JSON output and phone rendering used by the
// ask, chat, products, compare and health handlers.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jeranaias/phonewise-tui/internal/api"
	"github.com/jeranaias/phonewise-tui/internal/config"
	"github.com/jeranaias/phonewise-tui/internal/model"
	"github.com/jeranaias/phonewise-tui/internal/util"
)

// =============================================================================
// CLIENT CONSTRUCTION
// =============================================================================

// newClient builds an API client from the global config, applying any
// --api-url override from the command line.
func newClient(args Args) *api.Client {
	cfg := config.Global()

	baseURL := cfg.API.BaseURL
	if args.BaseURL != "" {
		baseURL = args.BaseURL
	}

	return api.NewClient(baseURL).
		WithTimeout(cfg.API.Timeout()).
		WithMaxRetries(cfg.API.MaxRetries).
		WithRateLimit(cfg.API.RateLimitRPS)
}

// =============================================================================
// JSON OUTPUT
// =============================================================================

// outputJSON marshals v with indentation and writes it to stdout.
// Used by every command's --json mode so scripts get a stable shape.
func outputJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// =============================================================================
// PHONE RENDERING
// =============================================================================

// printPhoneLine writes a single listing row for a phone.
func printPhoneLine(p *model.Phone) {
	fmt.Printf("  %s %s %s  %s\n",
		DimStyle.Render(fmt.Sprintf("#%-4d", p.ID)),
		BrandStyle.Render(fmt.Sprintf("%-28s", p.DisplayName())),
		PriceStyle.Render(fmt.Sprintf("%12s", util.FormatINR(p.PriceINR))),
		DimStyle.Render(p.SpecLine()))
}

// printPhoneList writes a listing of phones with a count footer.
func printPhoneList(phones []model.Phone) {
	if len(phones) == 0 {
		fmt.Println(DimStyle.Render("No phones matched."))
		return
	}
	for i := range phones {
		printPhoneLine(&phones[i])
	}
	fmt.Println()
	fmt.Println(DimStyle.Render(fmt.Sprintf("%d phone(s)", len(phones))))
}

// printPhoneDetail writes the full spec sheet for one phone.
func printPhoneDetail(p *model.Phone) {
	fmt.Println(TitleStyle.Render(p.DisplayName()))
	fmt.Printf("%s %s\n", LabelStyle.Render("Price"), PriceStyle.Render(util.FormatINR(p.PriceINR)))

	fmt.Println(SectionStyle.Render("Display"))
	fmt.Printf("%s %.1f\" %s, %s @ %dHz\n",
		LabelStyle.Render("Screen"), p.DisplaySize, p.DisplayType, p.Resolution, p.RefreshRate)

	fmt.Println(SectionStyle.Render("Performance"))
	fmt.Printf("%s %s\n", LabelStyle.Render("Processor"), ValueStyle.Render(p.Processor))
	fmt.Printf("%s %dGB RAM / %dGB storage\n", LabelStyle.Render("Memory"), p.RAMGB, p.StorageGB)

	fmt.Println(SectionStyle.Render("Camera"))
	fmt.Printf("%s %s\n", LabelStyle.Render("Rear"), ValueStyle.Render(p.RearCamera))
	fmt.Printf("%s %s\n", LabelStyle.Render("Front"), ValueStyle.Render(p.FrontCamera))

	fmt.Println(SectionStyle.Render("Battery"))
	charging := fmt.Sprintf("%dmAh, %dW charging", p.BatteryMAH, p.FastChargingW)
	if p.WirelessCharging {
		charging += " + wireless"
	}
	fmt.Printf("%s %s\n", LabelStyle.Render("Battery"), ValueStyle.Render(charging))

	fmt.Println(SectionStyle.Render("General"))
	fmt.Printf("%s %s (%d)\n", LabelStyle.Render("OS"), ValueStyle.Render(p.OS), p.LaunchYear)
	if len(p.Features) > 0 {
		fmt.Printf("%s %s\n", LabelStyle.Render("Features"), ValueStyle.Render(strings.Join(p.Features, ", ")))
	}
	if p.Highlights != "" {
		fmt.Printf("%s %s\n", LabelStyle.Render("Highlights"), ValueStyle.Render(p.Highlights))
	}
}

// printComparison writes a comparison as an aligned text table. Rows
// arrive keyed by phone id; headers show display names. The winner of
// a row is marked with an asterisk.
func printComparison(cmp *model.Comparison) {
	names := make([]string, len(cmp.Phones))
	keys := make([]string, len(cmp.Phones))
	for i := range cmp.Phones {
		names[i] = cmp.Phones[i].DisplayName()
		keys[i] = strconv.Itoa(cmp.Phones[i].ID)
	}

	// Column widths: spec column plus one per phone.
	specW := len("Spec")
	for _, row := range cmp.Rows {
		if len(row.SpecName) > specW {
			specW = len(row.SpecName)
		}
	}
	colW := make([]int, len(names))
	for i, name := range names {
		colW[i] = len(name)
		for _, row := range cmp.Rows {
			v := row.Values[keys[i]]
			if row.Winner == keys[i] {
				v += " *"
			}
			if len(v) > colW[i] {
				colW[i] = len(v)
			}
		}
	}

	// Header
	fmt.Printf("  %-*s", specW, "Spec")
	for i, name := range names {
		fmt.Printf("  %-*s", colW[i], BrandStyle.Render(name))
	}
	fmt.Println()
	total := specW + 2
	for _, w := range colW {
		total += w + 2
	}
	fmt.Println("  " + RenderSeparator(total))

	// Rows
	for _, row := range cmp.Rows {
		fmt.Printf("  %-*s", specW, row.SpecName)
		for i, key := range keys {
			v := row.Values[key]
			if row.Winner != "" && row.Winner == key {
				v = PriceStyle.Render(v + " *")
				// Styled strings carry escape codes; pad manually.
				fmt.Printf("  %s%s", v, strings.Repeat(" ", max(0, colW[i]-len(row.Values[key])-2)))
				continue
			}
			fmt.Printf("  %-*s", colW[i], v)
		}
		fmt.Println()
	}

	if cmp.Summary != "" {
		fmt.Println()
		fmt.Println(SectionStyle.Render("Summary"))
		fmt.Println(ValueStyle.Render(cmp.Summary))
	}
	if cmp.Recommendation != "" {
		fmt.Println(SectionStyle.Render("Recommendation"))
		fmt.Println(ValueStyle.Render(cmp.Recommendation))
	}
}

// printError writes a styled error line to stderr.
func printError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", ErrorStyle.Render("Error:"), err)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
