package usecase

import (
	"context"
	"errors"
	"fmt"

	"bgm-auto-tracker/domain/dto"
	"bgm-auto-tracker/domain/model"
	"bgm-auto-tracker/domain/repository"
	"bgm-auto-tracker/infrastructure/logger"
)

// ErrMissingUserID is returned when a successful token reply has no user_id.
var ErrMissingUserID = errors.New("token response has no user_id")

// ProviderError carries an OAuth error object returned by bgm.tv.
type ProviderError struct {
	Body map[string]interface{}
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("bgm.tv rejected the grant: %v", e.Body["error"])
}

// IOAuthUsecase defines the bgm.tv token operations
type IOAuthUsecase interface {
	AuthorizeURL() string
	// ExchangeCode completes the authorization code flow and stores the token.
	ExchangeCode(ctx context.Context, code string) (*model.Token, error)
	// RefreshToken renews a token and stores the result.
	RefreshToken(ctx context.Context, refreshToken string) (*model.Token, error)
}

type oauthUsecase struct {
	provider  repository.IBangumiOAuth
	tokenRepo repository.IToken
}

// NewOAuthUsecase creates a new OAuth usecase
func NewOAuthUsecase(provider repository.IBangumiOAuth, tokenRepo repository.IToken) IOAuthUsecase {
	return &oauthUsecase{provider: provider, tokenRepo: tokenRepo}
}

func (u *oauthUsecase) AuthorizeURL() string {
	return u.provider.AuthCodeURL()
}

func (u *oauthUsecase) ExchangeCode(ctx context.Context, code string) (*model.Token, error) {
	resp, err := u.provider.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return u.store(ctx, resp)
}

func (u *oauthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*model.Token, error) {
	resp, err := u.provider.RefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	return u.store(ctx, resp)
}

func (u *oauthUsecase) store(ctx context.Context, resp *dto.ProviderTokenResponse) (*model.Token, error) {
	if resp.HasError() {
		return nil, &ProviderError{Body: resp.Body}
	}

	var token model.Token
	if err := resp.Decode(&token); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if token.UserID == 0 {
		return nil, ErrMissingUserID
	}
	token.ID = token.UserID
	token.AuthTime = resp.IssuedAt.Unix()

	if err := u.tokenRepo.Upsert(ctx, &token); err != nil {
		return nil, err
	}
	logger.GetLogger().WithField("user_id", token.UserID).Info("Stored bgm.tv token")
	return &token, nil
}
