// Package services defines the business logic for articles, comments, topics
// and users. Every operation is a validate -> check -> act pipeline built
// from Steps: validation rules and existence checks run first and the
// repository operation only runs once they all passed.
//
// Errors are never recovered here. Whatever a step returns (apperr values
// from validation/repo, or raw unexpected errors) is handed back unchanged
// so the HTTP layer can normalize it.
package services

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/tbourn/go-news-api/internal/apperr"
)

// Step is one stage of a pipeline.
type Step func(ctx context.Context) error

// Run executes steps in order and stops at the first failure. A cancelled
// or expired context stops the pipeline before the next step.
func Run(ctx context.Context, steps ...Step) error {
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// All combines independent steps into one that runs them concurrently and
// waits for all of them. The first failure is returned and cancels the
// context seen by the others.
func All(steps ...Step) Step {
	return func(ctx context.Context) error {
		g, gctx := errgroup.WithContext(ctx)
		for _, step := range steps {
			g.Go(func() error { return step(gctx) })
		}
		return g.Wait()
	}
}

// endSpan records err on span. Expected outcomes (validation, not found)
// are recorded as events only; store and unexpected errors mark the span
// as failed.
func endSpan(span trace.Span, err error) {
	defer span.End()
	if err == nil {
		return
	}
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindNotFound:
		span.AddEvent(err.Error())
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
