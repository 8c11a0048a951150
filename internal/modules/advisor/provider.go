// Package advisor serializes a profile plus its computed analyses into a
// compact textual context and relays questions to an injected text
// completion provider. The analysis engines never depend on the provider
// or its availability; the capability is injected here and nowhere else.
package advisor

import (
	"context"
	"errors"
)

// ErrProvider wraps all failures of the external completion provider so
// callers can distinguish provider outages from engine errors.
var ErrProvider = errors.New("text completion provider error")

// TextCompletionProvider is the capability interface for the external
// language model: given a prompt, it returns text or fails with an error
// wrapping ErrProvider.
type TextCompletionProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
