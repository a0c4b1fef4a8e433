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

type MissingReportRepository struct {
	collection *mongo.Collection
}

func NewMissingReportRepository(db *mongo.Database) repository.IMissingReport {
	return &MissingReportRepository{collection: db.Collection(MissingReportCollection)}
}

func (r *MissingReportRepository) Insert(ctx context.Context, report model.MissingReport) error {
	if _, err := r.collection.InsertOne(ctx, report); err != nil {
		return fmt.Errorf("insert missing report: %w", err)
	}
	return nil
}

func (r *MissingReportRepository) Recent(ctx context.Context, limit int64) ([]model.MissingReport, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.D{{Key: "_id", Value: 0}}).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list missing reports: %w", err)
	}
	reports := []model.MissingReport{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("decode missing reports: %w", err)
	}
	return reports, nil
}
