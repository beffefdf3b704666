package dto

import "time"

// Audit events published on the session audit topic.

type DocumentIngestedEvent struct {
	SessionId  string    `json:"session_id"`
	DocName    string    `json:"doc_name"`
	DocHash    string    `json:"doc_hash"`
	ChunkCount int       `json:"chunk_count"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ChatAnsweredEvent struct {
	SessionId  string    `json:"session_id"`
	Retrieved  int       `json:"retrieved"`
	OccurredAt time.Time `json:"occurred_at"`
}
