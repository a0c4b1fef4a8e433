package repository

import (
	"context"
	"errors"

	"bgm-auto-tracker/domain/dto"
)

// ErrProviderNotJSON is returned when bgm.tv answers a token request with a body that is not a JSON object.
var ErrProviderNotJSON = errors.New("token endpoint returned a non-JSON body")

// IBangumiOAuth is the bgm.tv OAuth2 provider.
type IBangumiOAuth interface {
	AuthCodeURL() string
	ExchangeCode(ctx context.Context, code string) (*dto.ProviderTokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.ProviderTokenResponse, error)
}
