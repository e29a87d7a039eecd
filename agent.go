package llm

import (
	"context"

	// Packages
	opt "github.com/mutablelogic/go-llm-agent/pkg/opt"
)

// An Agent sends a prompt to a chat-completion model and returns the text
// of the first completion
type Agent interface {
	// Return the model identifier
	Model() string

	// Ask sends a system turn and a user turn, and returns the text of the
	// first choice in the response
	Ask(ctx context.Context, prompt string, opts ...opt.Opt) (string, error)
}
