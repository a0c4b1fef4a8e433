package repository

import (
	"context"
	"errors"

	"bgm-auto-tracker/domain/model"
)

// ErrSubjectNotFound is returned when a site show id has no catalog entry.
var ErrSubjectNotFound = errors.New("subject not found")

// ISubject reads the per-site catalog.
type ISubject interface {
	// FindByBangumiID returns ErrSubjectNotFound when the id is not mapped.
	FindByBangumiID(ctx context.Context, website model.Website, bangumiID string) (model.Subject, error)
}

// ISubjectCache is a best-effort cache in front of ISubject.
type ISubjectCache interface {
	// Get returns nil, nil on a cache miss.
	Get(ctx context.Context, website model.Website, bangumiID string) (model.Subject, error)
	Set(ctx context.Context, website model.Website, bangumiID string, subject model.Subject) error
}
