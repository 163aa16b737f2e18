package output

import (
	"context"

	"localegen/internal/domain/entities"
)

// Translator maps a template document to its localized counterpart for one
// target language. The placeholder implementation copies values verbatim; a
// real translation backend can be substituted without touching the
// scaffolding logic.
type Translator interface {
	Translate(ctx context.Context, doc entities.Document, target entities.Target) (entities.Document, error)
}
