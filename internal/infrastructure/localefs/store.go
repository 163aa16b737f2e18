package localefs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"localegen/internal/domain"
	"localegen/internal/domain/entities"
	"localegen/internal/ports/output"
)

// Ensure Store implements the output.LocaleStore port.
var _ output.LocaleStore = (*Store)(nil)

// Store reads the template and writes locale files on the local filesystem.
type Store struct {
	dir string // output directory, created on first write
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

var bom = []byte{0xEF, 0xBB, 0xBF}

// LoadTemplate reads the UTF-8 JSON template at path. A leading byte order
// mark is tolerated.
func (s *Store) LoadTemplate(_ context.Context, path string) (entities.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, path)
		}
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}
	var doc entities.Document
	if err := json.Unmarshal(bytes.TrimPrefix(data, bom), &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrTemplateMalformed, path, err)
	}
	if doc == nil {
		// "null" decodes into a nil map without an error.
		return nil, fmt.Errorf("%w: %s", domain.ErrTemplateMalformed, path)
	}
	return doc, nil
}

// WriteLocale serializes doc to <dir>/<code>.json, overwriting any previous
// file without backup. Output is UTF-8 with 2-space indentation; HTML
// escaping is disabled so non-ASCII text is written literally.
func (s *Store) WriteLocale(_ context.Context, target entities.Target, doc entities.Document) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", s.dir, err)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode %s: %w", target.FileName(), err)
	}
	path := s.Path(target)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Path returns the destination path for target.
func (s *Store) Path(target entities.Target) string {
	return filepath.Join(s.dir, target.FileName())
}
