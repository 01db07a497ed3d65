package domain

import "errors"

// Domain errors
var (
	// ErrNoDocumentContext means the session has no stored document text.
	// A session that was never uploaded to and a session holding an empty
	// extraction are deliberately indistinguishable for callers.
	ErrNoDocumentContext = errors.New("no document context for session")
)
