package usecase

import (
	"context"

	"bgm-auto-tracker/domain/dto"
	"bgm-auto-tracker/domain/model"
	"bgm-auto-tracker/domain/repository"
)

const (
	StatisticsLimit    int64 = 500
	RecentReportsLimit int64 = 30
)

// IMissingUsecase defines the missing bangumi operations
type IMissingUsecase interface {
	// Report records a user supplied mapping for a missing show.
	Report(ctx context.Context, report model.MissingReport) error
	Statistics(ctx context.Context, filter model.SubjectFilter) ([]dto.MissingStatisticEntry, error)
	RecentReports(ctx context.Context) ([]model.MissingReport, error)
}

type missingUsecase struct {
	statisticRepo repository.IMissingStatistic
	reportRepo    repository.IMissingReport
}

// NewMissingUsecase creates a new missing bangumi usecase
func NewMissingUsecase(statisticRepo repository.IMissingStatistic, reportRepo repository.IMissingReport) IMissingUsecase {
	return &missingUsecase{statisticRepo: statisticRepo, reportRepo: reportRepo}
}

func (u *missingUsecase) Report(ctx context.Context, report model.MissingReport) error {
	if err := u.statisticRepo.SetReport(ctx, report); err != nil {
		return err
	}
	return u.reportRepo.Insert(ctx, report)
}

func (u *missingUsecase) Statistics(ctx context.Context, filter model.SubjectFilter) ([]dto.MissingStatisticEntry, error) {
	statistics, err := u.statisticRepo.List(ctx, filter, StatisticsLimit)
	if err != nil {
		return nil, err
	}
	entries := make([]dto.MissingStatisticEntry, 0, len(statistics))
	for _, s := range statistics {
		entries = append(entries, dto.NewMissingStatisticEntry(s))
	}
	return entries, nil
}

func (u *missingUsecase) RecentReports(ctx context.Context) ([]model.MissingReport, error) {
	return u.reportRepo.Recent(ctx, RecentReportsLimit)
}
