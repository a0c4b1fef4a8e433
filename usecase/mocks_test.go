package usecase_test

import (
	"context"

	"bgm-auto-tracker/domain/dto"
	"bgm-auto-tracker/domain/model"

	"github.com/stretchr/testify/mock"
)

type MockBangumiOAuth struct {
	mock.Mock
}

func (m *MockBangumiOAuth) AuthCodeURL() string {
	return m.Called().String(0)
}

func (m *MockBangumiOAuth) ExchangeCode(ctx context.Context, code string) (*dto.ProviderTokenResponse, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProviderTokenResponse), args.Error(1)
}

func (m *MockBangumiOAuth) RefreshToken(ctx context.Context, refreshToken string) (*dto.ProviderTokenResponse, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProviderTokenResponse), args.Error(1)
}

type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) Upsert(ctx context.Context, token *model.Token) error {
	return m.Called(ctx, token).Error(0)
}

type MockSubjectRepository struct {
	mock.Mock
}

func (m *MockSubjectRepository) FindByBangumiID(ctx context.Context, website model.Website, bangumiID string) (model.Subject, error) {
	args := m.Called(ctx, website, bangumiID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Subject), args.Error(1)
}

type MockSubjectCache struct {
	mock.Mock
}

func (m *MockSubjectCache) Get(ctx context.Context, website model.Website, bangumiID string) (model.Subject, error) {
	args := m.Called(ctx, website, bangumiID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Subject), args.Error(1)
}

func (m *MockSubjectCache) Set(ctx context.Context, website model.Website, bangumiID string, subject model.Subject) error {
	return m.Called(ctx, website, bangumiID, subject).Error(0)
}

type MockMissingStatisticRepository struct {
	mock.Mock
}

func (m *MockMissingStatisticRepository) IncrementMiss(ctx context.Context, website model.Website, bangumiID string) error {
	return m.Called(ctx, website, bangumiID).Error(0)
}

func (m *MockMissingStatisticRepository) SetReport(ctx context.Context, report model.MissingReport) error {
	return m.Called(ctx, report).Error(0)
}

func (m *MockMissingStatisticRepository) Delete(ctx context.Context, website model.Website, bangumiID string) error {
	return m.Called(ctx, website, bangumiID).Error(0)
}

func (m *MockMissingStatisticRepository) List(ctx context.Context, filter model.SubjectFilter, limit int64) ([]model.MissingStatistic, error) {
	args := m.Called(ctx, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MissingStatistic), args.Error(1)
}

type MockMissingReportRepository struct {
	mock.Mock
}

func (m *MockMissingReportRepository) Insert(ctx context.Context, report model.MissingReport) error {
	return m.Called(ctx, report).Error(0)
}

func (m *MockMissingReportRepository) Recent(ctx context.Context, limit int64) ([]model.MissingReport, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MissingReport), args.Error(1)
}
