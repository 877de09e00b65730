// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive chat command handler for phonewise CLI.
//
// CLI: Comprehensive help and examples for all commands
// USABILITY: Markdown rendering and history for better CLI experience
//
// Handles the "phonewise chat" command, a plain-terminal REPL for
// environments where the full TUI is unwanted (ssh, screen readers,
// logging shells). Talks to the same assistant API and session file
// as the TUI.
//
// Command: chat
// Short:   Interactive plain-terminal chat
//
// Interactive Commands (during chat):
//   /help, /h     Show available commands
//   /history      Show the server-side transcript
//   /new          Start a new session
//   /clear        Clear the server-side transcript
//   /quit, /q     Exit chat
//   Ctrl+D        Exit chat
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/jeranaias/phonewise-tui/internal/api"
	"github.com/jeranaias/phonewise-tui/internal/config"
	"github.com/jeranaias/phonewise-tui/internal/session"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for interactive chat.
// USABILITY: Supports arrow keys for history navigation and line editing.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a new ChatCLI with input history support.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	historyFile, err := config.HistoryPath()
	if err != nil {
		historyFile = os.TempDir() + "/phonewise_history"
	}

	cli := &ChatCLI{
		line:        line,
		historyFile: historyFile,
	}
	cli.LoadHistory()
	return cli
}

// LoadHistory loads input history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt.
// Non-empty lines are appended to history.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists input history with owner-only permissions.
func (c *ChatCLI) SaveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// CHAT HANDLER
// =============================================================================

// HandleChat runs the interactive plain-terminal chat loop.
func HandleChat(args Args) error {
	if !IsTTY() {
		return fmt.Errorf("stdin is not a terminal; use \"phonewise ask\" for piped input")
	}

	path, err := config.SessionPath()
	if err != nil {
		return fmt.Errorf("cannot resolve session path: %w", err)
	}
	sessions := session.NewStore(path)
	if err := sessions.Init(); err != nil {
		return fmt.Errorf("cannot establish session: %w", err)
	}

	client := newClient(args)

	if !args.Quiet {
		fmt.Println(TitleStyle.Render("phonewise chat"))
		fmt.Println(DimStyle.Render("Ask about phones. /help for commands, /quit or Ctrl+D to exit."))
		fmt.Println()
	}

	input := NewChatCLI()
	defer input.Close()

	for {
		line, err := input.ReadInput("you> ")
		if err != nil {
			if err == io.EOF || err == liner.ErrPromptAborted {
				fmt.Println()
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			done, err := handleChatCommand(client, sessions, line)
			if err != nil {
				printError(err)
			}
			if done {
				return nil
			}
			continue
		}

		resp, err := client.SendMessage(context.Background(), api.ChatRequest{
			SessionID: sessions.ID(),
			Message:   line,
		})
		if err != nil {
			printError(describeAPIError(err))
			continue
		}

		displayResponse(resp.Response)
		if len(resp.Products) > 0 {
			printPhoneList(resp.Products)
		}
		if len(resp.Suggestions) > 0 && !args.Quiet {
			fmt.Println(DimStyle.Render("suggestions: " + strings.Join(resp.Suggestions, " | ")))
		}
		fmt.Println()
	}
}

// handleChatCommand dispatches a /command. Returns true when the loop
// should exit.
func handleChatCommand(client *api.Client, sessions *session.Store, line string) (bool, error) {
	cmd := strings.Fields(line)[0]

	switch cmd {
	case "/quit", "/q", "/exit":
		return true, nil

	case "/help", "/h":
		fmt.Println(DimStyle.Render("  /help      Show this help"))
		fmt.Println(DimStyle.Render("  /history   Show the server-side transcript"))
		fmt.Println(DimStyle.Render("  /new       Start a new session"))
		fmt.Println(DimStyle.Render("  /clear     Clear the server-side transcript"))
		fmt.Println(DimStyle.Render("  /quit      Exit (also Ctrl+D)"))
		return false, nil

	case "/history":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		hist, err := client.History(ctx, sessions.ID(), config.Global().Chat.HistoryLimit)
		if err != nil {
			return false, describeAPIError(err)
		}
		if len(hist.Messages) == 0 {
			fmt.Println(DimStyle.Render("No history for this session."))
			return false, nil
		}
		for _, m := range hist.Messages {
			role := "you"
			if m.Role == "assistant" {
				role = "bot"
			}
			fmt.Printf("%s %s\n", DimStyle.Render(role+">"), m.Content)
		}
		return false, nil

	case "/new":
		if err := sessions.Reset(); err != nil {
			return false, fmt.Errorf("could not start a new session: %w", err)
		}
		fmt.Println(SuccessStyle.Render("New session: ") + DimStyle.Render(sessions.ID()))
		return false, nil

	case "/clear":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := client.ClearHistory(ctx, sessions.ID())
		if err != nil && !errors.Is(err, api.ErrNotFound) {
			return false, describeAPIError(err)
		}
		fmt.Println(SuccessStyle.Render("Transcript cleared."))
		return false, nil

	default:
		return false, fmt.Errorf("unknown command %s, try /help", cmd)
	}
}
