// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the persisted chat session identity.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/phonewise-tui/internal/util"
)

// ErrNoStore indicates a session operation was attempted without a store.
var ErrNoStore = errors.New("no session store")

// =============================================================================
// SESSION STORE
// =============================================================================

// Store owns the single session identifier shared by all chat requests.
// The id is persisted to disk so conversation continuity survives a
// restart; it is scoped to this install, not to any user account.
//
// All methods are safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	id   string
	path string
}

// persisted is the on-disk shape of the session file.
type persisted struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewStore creates a session store backed by the given file path.
// No id exists until Init or Reset is called.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// ID returns the current session id, or "" if none has been established.
func (s *Store) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// Init establishes the session id. Idempotent: if an id is already loaded
// it is kept; otherwise the persisted id is loaded from disk; only when
// neither exists is a fresh id generated and persisted.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.id != "" {
		return nil
	}

	if id, err := s.load(); err == nil && id != "" {
		s.id = id
		return nil
	}

	return s.generate()
}

// Reset unconditionally replaces the session id with a fresh one and
// persists it. Used when the user starts a new conversation.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generate()
}

// Path returns the session file location.
func (s *Store) Path() string {
	return s.path
}

// =============================================================================
// PERSISTENCE
// =============================================================================

// load reads the persisted session id from disk.
func (s *Store) load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", err
	}

	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		return "", fmt.Errorf("corrupt session file: %w", err)
	}
	return p.SessionID, nil
}

// generate creates a fresh id and persists it. Caller must hold s.mu.
func (s *Store) generate() error {
	id := generateSessionID()

	data, err := json.MarshalIndent(persisted{
		SessionID: id,
		CreatedAt: time.Now(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	// Session file is local identity, keep it owner-only like the config.
	if err := util.AtomicWriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.id = id
	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateSessionID creates a unique session id. The millisecond
// timestamp keeps ids sortable in server logs; the random suffix keeps
// two installs created in the same millisecond distinct.
func generateSessionID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return "session_" + util.Int64ToString(time.Now().UnixMilli()) + "_" + suffix
}
