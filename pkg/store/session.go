package store

import (
	"time"

	"business-chat-be/pkg/vectorindex"
)

// Message is a single turn of the conversation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// DocumentState holds everything derived from one uploaded document.
// It is replaced wholesale on a new upload, never partially mutated.
type DocumentState struct {
	Text   string   `json:"-"`
	Hash   string   `json:"hash"`
	Name   string   `json:"name"`
	Chunks []string `json:"-"`
}

// Session is the active per-conversation state in memory. It binds at
// most one ingested document and its vector index to an opaque ID.
type Session struct {
	ID        string             `json:"id"`
	Messages  []Message          `json:"messages"`
	Doc       *DocumentState     `json:"doc,omitempty"`
	Index     *vectorindex.Index `json:"-"`
	Ready     bool               `json:"ready"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// AppendTurn appends to the ordered, append-only history.
func (s *Session) AppendTurn(role, content string) {
	s.Messages = append(s.Messages, Message{Role: role, Content: content})
	s.UpdatedAt = time.Now()
}

// ClearDocument drops the derived document state and the conversation
// tied to it, so a failed ingest can never leave a half-applied
// document/index pairing behind.
func (s *Session) ClearDocument() {
	s.Doc = nil
	s.Index = nil
	s.Ready = false
	s.Messages = nil
	s.UpdatedAt = time.Now()
}
