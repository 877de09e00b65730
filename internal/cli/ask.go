// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - Single question command handler for phonewise CLI.
//
// CLI: Comprehensive help and examples for all commands
// USABILITY: Markdown rendering and history for better CLI experience
//
// Handles the "phonewise ask" command which sends one question to the
// assistant and prints the reply, recommended phones and follow-up
// suggestions.
//
// Command: ask [question]
// Short:   Ask a single question
//
// Examples:
//   phonewise ask "best camera phone under 50000"
//   phonewise ask --json "gaming phones with 120Hz"
//   echo "compare flagships" | phonewise ask
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/phonewise-tui/internal/api"
	"github.com/jeranaias/phonewise-tui/internal/config"
	"github.com/jeranaias/phonewise-tui/internal/session"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// markdownRenderer is the global glamour renderer for assistant replies.
// USABILITY: Renders markdown responses with formatting and word wrap.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to plain text if renderer initialization fails
		markdownRenderer = nil
	}
}

// renderMarkdown renders markdown content for terminal display.
// Returns the original content if rendering fails or renderer is unavailable.
func renderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}
	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// displayResponse prints an assistant reply with markdown rendering
// when stdout is a TTY, plain text otherwise to keep pipes clean.
func displayResponse(response string) {
	if IsStdoutTTY() {
		fmt.Print(renderMarkdown(response))
	} else {
		fmt.Println(response)
	}
}

// =============================================================================
// ASK HANDLER
// =============================================================================

// HandleAsk handles the "ask" command: one question, one reply.
// The session id is shared with the TUI so follow-up asks keep context.
func HandleAsk(args Args) error {
	question := strings.TrimSpace(args.Query)

	// No question on the command line: accept piped stdin.
	if question == "" {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			data, err := io.ReadAll(bufio.NewReader(os.Stdin))
			if err == nil {
				question = strings.TrimSpace(string(data))
			}
		}
	}
	if question == "" {
		return fmt.Errorf("no question provided. Usage: phonewise ask \"your question\"")
	}

	sessionID, err := establishSession()
	if err != nil {
		return err
	}

	client := newClient(args)
	resp, err := client.SendMessage(context.Background(), api.ChatRequest{
		SessionID: sessionID,
		Message:   question,
	})
	if err != nil {
		return describeAPIError(err)
	}

	if args.JSON {
		return outputJSON(resp)
	}

	displayResponse(resp.Response)

	if len(resp.Products) > 0 {
		fmt.Println(SectionStyle.Render("Phones"))
		printPhoneList(resp.Products)
	}

	if len(resp.Suggestions) > 0 && !args.Quiet {
		fmt.Println()
		fmt.Println(DimStyle.Render("You could ask next:"))
		for _, s := range resp.Suggestions {
			fmt.Println(DimStyle.Render("  - " + s))
		}
	}

	return nil
}

// establishSession loads or creates the persistent session id.
func establishSession() (string, error) {
	path, err := config.SessionPath()
	if err != nil {
		return "", fmt.Errorf("cannot resolve session path: %w", err)
	}
	store := session.NewStore(path)
	if err := store.Init(); err != nil {
		return "", fmt.Errorf("cannot establish session: %w", err)
	}
	return store.ID(), nil
}

// describeAPIError turns client errors into actionable messages.
func describeAPIError(err error) error {
	switch {
	case errors.Is(err, api.ErrUnavailable):
		return fmt.Errorf("the assistant service is not reachable; is it running? (%w)", err)
	case errors.Is(err, api.ErrRateLimited):
		return fmt.Errorf("rate limited by the assistant service, try again shortly (%w)", err)
	default:
		return err
	}
}
