package input

import (
	"context"

	"localegen/internal/domain/entities"
)

// ScaffoldFailure records one target that could not be generated.
type ScaffoldFailure struct {
	Target entities.Target
	Err    error
}

// ScaffoldResult reports the outcome of one scaffolding run.
type ScaffoldResult struct {
	Written  []entities.Target
	Failures []ScaffoldFailure
}

// Failed reports whether any target could not be generated.
func (r ScaffoldResult) Failed() bool {
	return len(r.Failures) > 0
}

type ScaffoldUseCase interface {
	LoadTemplate(ctx context.Context, path string) (entities.Document, error)
	Scaffold(ctx context.Context, template entities.Document, targets []entities.Target) (ScaffoldResult, error)
}
