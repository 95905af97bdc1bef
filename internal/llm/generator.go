// Package llm defines the boundary to the language-model collaborator that
// turns a free-text capital description into a raw field guess. The shipped
// implementation is a deterministic rule-based generator; a hosted model
// client can replace it behind the same interface.
package llm

import (
	"context"

	"github.com/tarunmehrda/corep-reporting-assistant/internal/extract"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/model"
)

// Generator produces a best-effort field guess from a user query and the
// supporting regulatory passages. The guess is untrusted: the extractor
// owns all coercion and defaulting.
type Generator interface {
	Generate(ctx context.Context, query string, passages []model.Passage) (extract.RawGuess, error)
}
