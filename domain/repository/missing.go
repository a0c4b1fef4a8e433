package repository

import (
	"context"

	"bgm-auto-tracker/domain/model"
)

// IMissingStatistic keeps per (website, bangumi_id) miss counters.
type IMissingStatistic interface {
	// IncrementMiss atomically bumps the counter, creating the entry with times=1.
	IncrementMiss(ctx context.Context, website model.Website, bangumiID string) error
	// SetReport sets subject id, title and href without touching the counter.
	SetReport(ctx context.Context, report model.MissingReport) error
	Delete(ctx context.Context, website model.Website, bangumiID string) error
	// List returns at most limit entries ordered by times desc, subject_id asc.
	List(ctx context.Context, filter model.SubjectFilter, limit int64) ([]model.MissingStatistic, error)
}

// IMissingReport is the append-only log of user reports.
type IMissingReport interface {
	Insert(ctx context.Context, report model.MissingReport) error
	// Recent returns the newest reports first.
	Recent(ctx context.Context, limit int64) ([]model.MissingReport, error)
}
