package domain

import "errors"

// Domain errors.
var (
	ErrTemplateNotFound  = errors.New("template file not found")
	ErrTemplateMalformed = errors.New("template is not a valid JSON object")
	ErrShapeMismatch     = errors.New("translated document does not match template shape")
)
