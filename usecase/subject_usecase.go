package usecase

import (
	"context"
	"errors"

	"bgm-auto-tracker/domain/model"
	"bgm-auto-tracker/domain/repository"
	"bgm-auto-tracker/infrastructure/logger"
)

// ISubjectUsecase defines the catalog lookup operation
type ISubjectUsecase interface {
	// QuerySubject looks up the catalog entry for a site show. A hit clears the
	// show's missing statistic; a miss counts it and returns repository.ErrSubjectNotFound.
	QuerySubject(ctx context.Context, website model.Website, bangumiID string) (model.Subject, error)
}

type subjectUsecase struct {
	subjectRepo   repository.ISubject
	subjectCache  repository.ISubjectCache
	statisticRepo repository.IMissingStatistic
}

// NewSubjectUsecase creates a new subject usecase; subjectCache may be nil
func NewSubjectUsecase(subjectRepo repository.ISubject, subjectCache repository.ISubjectCache, statisticRepo repository.IMissingStatistic) ISubjectUsecase {
	return &subjectUsecase{subjectRepo: subjectRepo, subjectCache: subjectCache, statisticRepo: statisticRepo}
}

func (u *subjectUsecase) QuerySubject(ctx context.Context, website model.Website, bangumiID string) (model.Subject, error) {
	subject, err := u.find(ctx, website, bangumiID)
	if errors.Is(err, repository.ErrSubjectNotFound) {
		if incErr := u.statisticRepo.IncrementMiss(ctx, website, bangumiID); incErr != nil {
			return nil, incErr
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	if err := u.statisticRepo.Delete(ctx, website, bangumiID); err != nil {
		return nil, err
	}
	return subject, nil
}

func (u *subjectUsecase) find(ctx context.Context, website model.Website, bangumiID string) (model.Subject, error) {
	lg := logger.GetLogger().WithField("website", website).WithField("bangumi_id", bangumiID)
	if u.subjectCache != nil {
		cached, err := u.subjectCache.Get(ctx, website, bangumiID)
		if err != nil {
			lg.WithField("error", err).Warn("Subject cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	subject, err := u.subjectRepo.FindByBangumiID(ctx, website, bangumiID)
	if err != nil {
		return nil, err
	}

	if u.subjectCache != nil {
		if err := u.subjectCache.Set(ctx, website, bangumiID, subject); err != nil {
			lg.WithField("error", err).Warn("Subject cache write failed")
		}
	}
	return subject, nil
}
