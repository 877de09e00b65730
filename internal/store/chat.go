// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store holds the in-memory chat transcript and compare-list state.
package store

import (
	"sync"

	"github.com/jeranaias/phonewise-tui/internal/model"
)

// MaxCompare is the most phones a side-by-side comparison can hold.
// The comparison table becomes unreadable beyond four columns.
const MaxCompare = 4

// MinCompare is the fewest phones a comparison makes sense for.
const MinCompare = 2

// =============================================================================
// CHAT STORE
// =============================================================================

// ChatStore owns the chat transcript, the loading flag, and the
// compare-list. It is the single authority on compare membership and
// capacity; views query it rather than keeping their own copies.
//
// All methods are safe for concurrent use.
type ChatStore struct {
	mu       sync.Mutex
	messages []*model.ChatMessage
	loading  bool
	compare  []model.Phone

	// epoch increments whenever the transcript is invalidated so that
	// in-flight request results issued against an older transcript can
	// be recognized and dropped.
	epoch uint64
}

// NewChatStore creates an empty chat store.
func NewChatStore() *ChatStore {
	return &ChatStore{}
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// Append adds a message to the end of the transcript. Messages are never
// reordered or edited after append.
func (s *ChatStore) Append(msg *model.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// Messages returns a snapshot of the transcript in send order.
func (s *ChatStore) Messages() []*model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// MessageCount returns the number of messages in the transcript.
func (s *ChatStore) MessageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// ClearMessages empties the transcript and advances the epoch so results
// of requests issued before the clear are dropped instead of appearing
// in the fresh conversation. The loading flag is cleared for the same
// reason: nothing in flight is wanted anymore.
func (s *ChatStore) ClearMessages() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
	s.loading = false
	s.epoch++
}

// =============================================================================
// LOADING FLAG
// =============================================================================

// SetLoading sets the awaiting-reply indicator. Last write wins.
func (s *ChatStore) SetLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

// Loading reports whether a reply is pending.
func (s *ChatStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Epoch returns the current transcript generation. A send records the
// epoch when it starts; its result is only applied if the epoch is
// unchanged when it completes.
func (s *ChatStore) Epoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

// =============================================================================
// COMPARE-LIST
// =============================================================================

// AddToCompare adds a phone to the compare-list. Duplicates (by id) and
// adds beyond MaxCompare are silent no-ops; the UI is expected to have
// already disabled the control via CanAddToCompare.
func (s *ChatStore) AddToCompare(p model.Phone) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.compare) >= MaxCompare {
		return
	}
	for _, existing := range s.compare {
		if existing.ID == p.ID {
			return
		}
	}
	s.compare = append(s.compare, p)
}

// RemoveFromCompare removes the phone with the given id, preserving the
// order of the rest. Unknown ids are a no-op.
func (s *ChatStore) RemoveFromCompare(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.compare {
		if p.ID == id {
			s.compare = append(s.compare[:i], s.compare[i+1:]...)
			return
		}
	}
}

// ClearCompare empties the compare-list.
func (s *ChatStore) ClearCompare() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.compare = nil
}

// CompareList returns a snapshot of the compare-list in selection order.
func (s *ChatStore) CompareList() []model.Phone {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Phone, len(s.compare))
	copy(out, s.compare)
	return out
}

// CompareIDs returns the ids of the compared phones in selection order.
func (s *ChatStore) CompareIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int, len(s.compare))
	for i, p := range s.compare {
		ids[i] = p.ID
	}
	return ids
}

// CompareCount returns the number of phones selected for comparison.
func (s *ChatStore) CompareCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.compare)
}

// InCompare reports whether the phone with the given id is selected.
func (s *ChatStore) InCompare(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.compare {
		if p.ID == id {
			return true
		}
	}
	return false
}

// CanAddToCompare reports whether the compare-list has room for another
// phone. Views use this to render the add control as inert at capacity.
func (s *ChatStore) CanAddToCompare() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.compare) < MaxCompare
}
