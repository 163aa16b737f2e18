package application

import (
	"context"
	"fmt"

	"localegen/internal/domain"
	"localegen/internal/domain/entities"
	"localegen/internal/ports/input"
	"localegen/internal/ports/output"
)

// Ensure Scaffolder implements the input.ScaffoldUseCase port.
var _ input.ScaffoldUseCase = (*Scaffolder)(nil)

// Scaffolder produces one placeholder locale file per target language,
// using the template's structure as content.
type Scaffolder struct {
	store      output.LocaleStore
	translator output.Translator
	reporter   output.Reporter
}

func NewScaffolder(store output.LocaleStore, translator output.Translator) *Scaffolder {
	return &Scaffolder{
		store:      store,
		translator: translator,
	}
}

// SetReporter installs a per-target progress listener. Optional.
func (s *Scaffolder) SetReporter(r output.Reporter) {
	s.reporter = r
}

func (s *Scaffolder) LoadTemplate(ctx context.Context, path string) (entities.Document, error) {
	return s.store.LoadTemplate(ctx, path)
}

// Scaffold writes one locale file per target, in sequence order. Duplicate
// targets are simply written again, last write wins. A failed target does
// not stop the run: the failure is recorded and the remaining targets are
// still processed.
func (s *Scaffolder) Scaffold(ctx context.Context, template entities.Document, targets []entities.Target) (input.ScaffoldResult, error) {
	var res input.ScaffoldResult
	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := s.scaffoldOne(ctx, template, target); err != nil {
			res.Failures = append(res.Failures, input.ScaffoldFailure{Target: target, Err: err})
			s.reportFailed(target, err)
			continue
		}
		res.Written = append(res.Written, target)
		s.reportWrote(target)
	}
	return res, nil
}

func (s *Scaffolder) scaffoldOne(ctx context.Context, template entities.Document, target entities.Target) error {
	doc, err := s.translator.Translate(ctx, template, target)
	if err != nil {
		return fmt.Errorf("translate %s: %w", target.Code, err)
	}
	// A translation may change values but never the key set or nesting.
	if !template.SameShape(doc) {
		return fmt.Errorf("%s: %w", target.Code, domain.ErrShapeMismatch)
	}
	return s.store.WriteLocale(ctx, target, doc)
}

func (s *Scaffolder) reportWrote(target entities.Target) {
	if s.reporter != nil {
		s.reporter.Wrote(target)
	}
}

func (s *Scaffolder) reportFailed(target entities.Target, err error) {
	if s.reporter != nil {
		s.reporter.Failed(target, err)
	}
}
