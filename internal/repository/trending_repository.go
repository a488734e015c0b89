package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/NazirHussain1/inkwell-backend/dto"
)

// TrendingRepository aggregates the hashtags collection written on publish.
type TrendingRepository struct {
	hashtags *mongo.Collection
}

func NewTrendingRepository(db *mongo.Database) *TrendingRepository {
	return &TrendingRepository{hashtags: db.Collection("hashtags")}
}

// TopHashtagsToday returns the k most used hashtags for today's UTC date.
func (r *TrendingRepository) TopHashtagsToday(ctx context.Context, k int) ([]dto.TrendingHashtag, error) {
	day := time.Now().UTC().Format("2006-01-02")
	return r.top(ctx, bson.M{"date": day}, k)
}

// TopHashtagsAllTime returns the k most used hashtags over all dates.
func (r *TrendingRepository) TopHashtagsAllTime(ctx context.Context, k int) ([]dto.TrendingHashtag, error) {
	return r.top(ctx, bson.M{}, k)
}

func (r *TrendingRepository) top(ctx context.Context, match bson.M, k int) ([]dto.TrendingHashtag, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":       "$tag",
			"postCount": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "postCount", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: k}},
	}

	cur, err := r.hashtags.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []dto.TrendingHashtag
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
