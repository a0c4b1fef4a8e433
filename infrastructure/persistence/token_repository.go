package persistence

import (
	"context"
	"fmt"

	"bgm-auto-tracker/domain/model"
	"bgm-auto-tracker/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type TokenRepository struct {
	collection *mongo.Collection
}

func NewTokenRepository(db *mongo.Database) repository.IToken {
	return &TokenRepository{collection: db.Collection(TokenCollection)}
}

// Upsert replaces the user's grant, creating it on first login.
func (r *TokenRepository) Upsert(ctx context.Context, token *model.Token) error {
	token.ID = token.UserID
	_, err := r.collection.ReplaceOne(ctx, bson.D{{Key: "_id", Value: token.ID}}, token, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert token for user %d: %w", token.UserID, err)
	}
	return nil
}
