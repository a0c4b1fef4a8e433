package persistence

import (
	"context"
	"fmt"

	"bgm-auto-tracker/domain/model"
	"bgm-auto-tracker/domain/repository"
	"bgm-auto-tracker/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type MissingStatisticRepository struct {
	collection *mongo.Collection
}

func NewMissingStatisticRepository(db *mongo.Database) repository.IMissingStatistic {
	return &MissingStatisticRepository{collection: db.Collection(MissingStatisticCollection)}
}

func (r *MissingStatisticRepository) IncrementMiss(ctx context.Context, website model.Website, bangumiID string) error {
	_, err := r.collection.UpdateOne(ctx, statisticKey(website, bangumiID), missUpdate(), options.UpdateOne().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("increment miss for %s/%s: %w", website, bangumiID, err)
	}
	return nil
}

func (r *MissingStatisticRepository) SetReport(ctx context.Context, report model.MissingReport) error {
	_, err := r.collection.UpdateOne(ctx, statisticKey(report.Website, report.BangumiID), reportUpdate(report), options.UpdateOne().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("set report for %s/%s: %w", report.Website, report.BangumiID, err)
	}
	return nil
}

func (r *MissingStatisticRepository) Delete(ctx context.Context, website model.Website, bangumiID string) error {
	res, err := r.collection.DeleteOne(ctx, statisticKey(website, bangumiID))
	if err != nil {
		return fmt.Errorf("delete statistic for %s/%s: %w", website, bangumiID, err)
	}
	if res.DeletedCount > 0 {
		logger.GetLogger().WithField("website", website).WithField("bangumi_id", bangumiID).Info("Cleared resolved missing statistic")
	}
	return nil
}

func (r *MissingStatisticRepository) List(ctx context.Context, filter model.SubjectFilter, limit int64) ([]model.MissingStatistic, error) {
	cursor, err := r.collection.Find(ctx, statisticFilter(filter), statisticFindOptions(limit))
	if err != nil {
		return nil, fmt.Errorf("list statistics: %w", err)
	}
	defer func(cursor *mongo.Cursor, ctx context.Context) {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}(cursor, ctx)

	statistics := []model.MissingStatistic{}
	if err := cursor.All(ctx, &statistics); err != nil {
		return nil, fmt.Errorf("decode statistics: %w", err)
	}
	return statistics, nil
}

func statisticKey(website model.Website, bangumiID string) bson.D {
	return bson.D{
		{Key: "website", Value: website.String()},
		{Key: "bangumi_id", Value: bangumiID},
	}
}

// missUpdate bumps the counter by one; on upsert the entry starts at times=1.
func missUpdate() bson.D {
	return bson.D{{Key: "$inc", Value: bson.D{{Key: "times", Value: int64(1)}}}}
}

// reportUpdate sets the descriptive fields only; times is created as 0 so
// reported entries still sort numerically.
func reportUpdate(report model.MissingReport) bson.D {
	return bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "subject_id", Value: report.SubjectID},
			{Key: "title", Value: report.Title},
			{Key: "href", Value: report.Href},
		}},
		{Key: "$setOnInsert", Value: bson.D{{Key: "times", Value: int64(0)}}},
	}
}

func statisticFilter(filter model.SubjectFilter) bson.D {
	switch filter {
	case model.SubjectKnown:
		return bson.D{{Key: "subject_id", Value: bson.D{{Key: "$exists", Value: true}}}}
	case model.SubjectUnknown:
		return bson.D{{Key: "subject_id", Value: bson.D{{Key: "$exists", Value: false}}}}
	default:
		return bson.D{}
	}
}

func statisticFindOptions(limit int64) *options.FindOptionsBuilder {
	return options.Find().
		SetSort(bson.D{{Key: "times", Value: -1}, {Key: "subject_id", Value: 1}}).
		SetProjection(bson.D{{Key: "_id", Value: 0}}).
		SetLimit(limit)
}
