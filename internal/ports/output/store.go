package output

import (
	"context"

	"localegen/internal/domain/entities"
)

type LocaleStore interface {
	// LoadTemplate reads and parses the base-language template at path.
	LoadTemplate(ctx context.Context, path string) (entities.Document, error)
	// WriteLocale creates or overwrites the locale file for target with doc.
	WriteLocale(ctx context.Context, target entities.Target, doc entities.Document) error
	// Path returns the destination path for target.
	Path(target entities.Target) string
}
