package persistence

import (
	"testing"

	"bgm-auto-tracker/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func TestStatisticKey(t *testing.T) {
	assert.Equal(t, bson.D{
		{Key: "website", Value: "bilibili"},
		{Key: "bangumi_id", Value: "28221000"},
	}, statisticKey(model.WebsiteBilibili, "28221000"))
}

func TestStatisticFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter model.SubjectFilter
		want   bson.D
	}{
		{name: "any", filter: model.SubjectAny, want: bson.D{}},
		{name: "known", filter: model.SubjectKnown, want: bson.D{{Key: "subject_id", Value: bson.D{{Key: "$exists", Value: true}}}}},
		{name: "unknown", filter: model.SubjectUnknown, want: bson.D{{Key: "subject_id", Value: bson.D{{Key: "$exists", Value: false}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statisticFilter(tt.filter))
		})
	}
}

func TestReportUpdate_DoesNotTouchCounter(t *testing.T) {
	update := reportUpdate(model.MissingReport{
		Website:   model.WebsiteIqiyi,
		BangumiID: "a_1",
		SubjectID: "253",
		Title:     "Cowboy Bebop",
		Href:      "https://www.iqiyi.com/a_1.html",
	})

	assert.Len(t, update, 2)
	assert.Equal(t, "$set", update[0].Key)
	assert.Equal(t, bson.D{
		{Key: "subject_id", Value: "253"},
		{Key: "title", Value: "Cowboy Bebop"},
		{Key: "href", Value: "https://www.iqiyi.com/a_1.html"},
	}, update[0].Value)
	assert.Equal(t, "$setOnInsert", update[1].Key)
	assert.Equal(t, bson.D{{Key: "times", Value: int64(0)}}, update[1].Value)
}

func TestMissUpdate_IncrementsByOne(t *testing.T) {
	assert.Equal(t, bson.D{
		{Key: "$inc", Value: bson.D{{Key: "times", Value: int64(1)}}},
	}, missUpdate())
}

func TestStatisticFindOptions(t *testing.T) {
	var opts options.FindOptions
	for _, set := range statisticFindOptions(500).List() {
		require.NoError(t, set(&opts))
	}

	assert.Equal(t, bson.D{{Key: "times", Value: -1}, {Key: "subject_id", Value: 1}}, opts.Sort)
	assert.Equal(t, bson.D{{Key: "_id", Value: 0}}, opts.Projection)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(500), *opts.Limit)
}
