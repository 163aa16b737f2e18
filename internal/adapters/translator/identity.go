package translator

import (
	"context"

	"localegen/internal/domain/entities"
	"localegen/internal/ports/output"
)

// Ensure Identity implements the output.Translator port.
var _ output.Translator = Identity{}

// Identity is the placeholder translator: it returns a deep copy of the
// template, so every generated locale file carries the base-language text
// until a real translation backend replaces this implementation.
type Identity struct{}

func (Identity) Translate(_ context.Context, doc entities.Document, _ entities.Target) (entities.Document, error) {
	return doc.Clone(), nil
}
