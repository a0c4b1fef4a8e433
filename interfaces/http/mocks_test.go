package http_test

import (
	"context"

	"bgm-auto-tracker/domain/dto"
	"bgm-auto-tracker/domain/model"

	"github.com/stretchr/testify/mock"
)

type MockOAuthUsecase struct {
	mock.Mock
}

func (m *MockOAuthUsecase) AuthorizeURL() string {
	return m.Called().String(0)
}

func (m *MockOAuthUsecase) ExchangeCode(ctx context.Context, code string) (*model.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Token), args.Error(1)
}

func (m *MockOAuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*model.Token, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Token), args.Error(1)
}

type MockSubjectUsecase struct {
	mock.Mock
}

func (m *MockSubjectUsecase) QuerySubject(ctx context.Context, website model.Website, bangumiID string) (model.Subject, error) {
	args := m.Called(ctx, website, bangumiID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Subject), args.Error(1)
}

type MockMissingUsecase struct {
	mock.Mock
}

func (m *MockMissingUsecase) Report(ctx context.Context, report model.MissingReport) error {
	return m.Called(ctx, report).Error(0)
}

func (m *MockMissingUsecase) Statistics(ctx context.Context, filter model.SubjectFilter) ([]dto.MissingStatisticEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.MissingStatisticEntry), args.Error(1)
}

func (m *MockMissingUsecase) RecentReports(ctx context.Context) ([]model.MissingReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MissingReport), args.Error(1)
}
