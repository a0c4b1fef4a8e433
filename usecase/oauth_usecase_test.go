package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"bgm-auto-tracker/domain/dto"
	"bgm-auto-tracker/domain/model"
	"bgm-auto-tracker/domain/repository"
	"bgm-auto-tracker/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Unix(1529418738, 0).UTC()

func tokenResponse(body map[string]interface{}) *dto.ProviderTokenResponse {
	return &dto.ProviderTokenResponse{StatusCode: 200, Body: body, IssuedAt: issuedAt}
}

func grantBody() map[string]interface{} {
	return map[string]interface{}{
		"access_token":  "at",
		"expires_in":    json.Number("604800"),
		"token_type":    "Bearer",
		"scope":         nil,
		"user_id":       json.Number("42"),
		"refresh_token": "rt",
	}
}

func TestOAuthUsecase_ExchangeCode(t *testing.T) {
	provider := new(MockBangumiOAuth)
	tokens := new(MockTokenRepository)

	provider.On("ExchangeCode", mock.Anything, "code").Return(tokenResponse(grantBody()), nil).Once()
	expected := &model.Token{
		ID:           42,
		UserID:       42,
		AccessToken:  "at",
		RefreshToken: "rt",
		TokenType:    "Bearer",
		ExpiresIn:    604800,
		AuthTime:     1529418738,
	}
	tokens.On("Upsert", mock.Anything, expected).Return(nil).Once()

	uc := usecase.NewOAuthUsecase(provider, tokens)
	token, err := uc.ExchangeCode(context.Background(), "code")

	require.NoError(t, err)
	assert.Equal(t, expected, token)
	provider.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestOAuthUsecase_RefreshToken_ProviderError(t *testing.T) {
	provider := new(MockBangumiOAuth)
	tokens := new(MockTokenRepository)

	body := map[string]interface{}{"error": "invalid_grant", "error_description": "Invalid refresh token"}
	provider.On("RefreshToken", mock.Anything, "rt").Return(tokenResponse(body), nil).Once()

	uc := usecase.NewOAuthUsecase(provider, tokens)
	token, err := uc.RefreshToken(context.Background(), "rt")

	assert.Nil(t, token)
	var providerErr *usecase.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, body, providerErr.Body)
	tokens.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestOAuthUsecase_RefreshToken_NotJSON(t *testing.T) {
	provider := new(MockBangumiOAuth)
	tokens := new(MockTokenRepository)

	provider.On("RefreshToken", mock.Anything, "rt").Return(nil, repository.ErrProviderNotJSON).Once()

	uc := usecase.NewOAuthUsecase(provider, tokens)
	_, err := uc.RefreshToken(context.Background(), "rt")

	assert.ErrorIs(t, err, repository.ErrProviderNotJSON)
	tokens.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestOAuthUsecase_MissingUserID(t *testing.T) {
	provider := new(MockBangumiOAuth)
	tokens := new(MockTokenRepository)

	body := grantBody()
	delete(body, "user_id")
	provider.On("ExchangeCode", mock.Anything, "code").Return(tokenResponse(body), nil).Once()

	uc := usecase.NewOAuthUsecase(provider, tokens)
	_, err := uc.ExchangeCode(context.Background(), "code")

	assert.ErrorIs(t, err, usecase.ErrMissingUserID)
	tokens.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestOAuthUsecase_StoreFailure(t *testing.T) {
	provider := new(MockBangumiOAuth)
	tokens := new(MockTokenRepository)

	provider.On("RefreshToken", mock.Anything, "rt").Return(tokenResponse(grantBody()), nil).Once()
	tokens.On("Upsert", mock.Anything, mock.AnythingOfType("*model.Token")).Return(assert.AnError).Once()

	uc := usecase.NewOAuthUsecase(provider, tokens)
	_, err := uc.RefreshToken(context.Background(), "rt")

	assert.ErrorIs(t, err, assert.AnError)
	tokens.AssertExpectations(t)
}

func TestOAuthUsecase_AuthorizeURL(t *testing.T) {
	provider := new(MockBangumiOAuth)
	provider.On("AuthCodeURL").Return("https://bgm.tv/oauth/authorize?client_id=bgm123").Once()

	uc := usecase.NewOAuthUsecase(provider, new(MockTokenRepository))

	assert.Equal(t, "https://bgm.tv/oauth/authorize?client_id=bgm123", uc.AuthorizeURL())
	provider.AssertExpectations(t)
}
