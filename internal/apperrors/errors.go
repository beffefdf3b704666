package apperrors

import "fmt"

// ValidationError covers bad client input: unsupported file types,
// empty messages, invalid chunk parameters. Maps to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// UnknownSessionError is a chat request referencing a session ID the
// store does not know. Maps to 404.
type UnknownSessionError struct {
	SessionID string
}

func (e *UnknownSessionError) Error() string {
	return "session not found, please upload a document first"
}

func NewUnknownSession(sessionID string) error {
	return &UnknownSessionError{SessionID: sessionID}
}

// CollaboratorError wraps a failed call to an external collaborator
// (extraction crash, embedding or generation failure). Maps to 500.
// Ingestion failures leave the session non-ready with no document
// state; chat failures leave at most the already-appended user turn.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

func NewCollaborator(op string, err error) error {
	return &CollaboratorError{Op: op, Err: err}
}
