package persistence

import (
	"context"
	"errors"
	"fmt"

	"bgm-auto-tracker/domain/model"
	"bgm-auto-tracker/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// SubjectRepository reads the catalog; each website has its own collection.
type SubjectRepository struct {
	collections map[model.Website]*mongo.Collection
}

func NewSubjectRepository(collections map[model.Website]*mongo.Collection) repository.ISubject {
	return &SubjectRepository{collections: collections}
}

func (r *SubjectRepository) FindByBangumiID(ctx context.Context, website model.Website, bangumiID string) (model.Subject, error) {
	collection, ok := r.collections[website]
	if !ok {
		return nil, fmt.Errorf("no catalog collection for website %q", website)
	}
	var subject model.Subject
	err := collection.FindOne(ctx, bson.D{{Key: "_id", Value: bangumiID}}).Decode(&subject)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrSubjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find %s subject %s: %w", website, bangumiID, err)
	}
	return subject, nil
}
