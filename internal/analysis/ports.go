//go:generate go run go.uber.org/mock/mockgen -source=ports.go -destination=../mocks/mock_ports.go -package=mocks
package analysis

import (
	"context"
	"encoding/json"
)

// Classifier is the local intent-classification service.
type Classifier interface {
	// Classify returns the raw JSON body the service produced for text.
	Classify(ctx context.Context, text string) (json.RawMessage, error)
}

// Completer is the chat-completion provider.
type Completer interface {
	// Complete sends a system and a user message and returns the first choice's content.
	Complete(ctx context.Context, system, user string) (string, error)
}
