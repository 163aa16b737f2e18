package entities

// Document is a locale document: a mapping from stable string keys to
// human-readable text, with nested mappings allowed to arbitrary depth.
// The base-language template is a Document, and so is every generated
// locale file.
type Document map[string]any

// Clone returns a deep copy of the document. Nested mappings are copied
// recursively; leaf values are copied as-is.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	// Preserve the concrete map type so clones compare equal to the source.
	switch m := v.(type) {
	case Document:
		return m.Clone()
	case map[string]any:
		return map[string]any(Document(m).Clone())
	default:
		return v
	}
}

// SameShape reports whether other has the same key set and nesting as d.
// Leaf values are not compared: two documents with identical keys but
// different translations still have the same shape.
func (d Document) SameShape(other Document) bool {
	if len(d) != len(other) {
		return false
	}
	for k, v := range d {
		ov, ok := other[k]
		if !ok {
			return false
		}
		sub, nested := asDocument(v)
		osub, onested := asDocument(ov)
		if nested != onested {
			return false
		}
		if nested && !sub.SameShape(osub) {
			return false
		}
	}
	return true
}

func asDocument(v any) (Document, bool) {
	switch m := v.(type) {
	case Document:
		return m, true
	case map[string]any:
		return Document(m), true
	default:
		return nil, false
	}
}
