package repository

import (
	"context"

	"bgm-auto-tracker/domain/model"
)

// IToken stores OAuth grants keyed by bgm.tv user id.
type IToken interface {
	Upsert(ctx context.Context, token *model.Token) error
}
