package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/NazirHussain1/inkwell-backend/model"
)

type FollowRepository struct {
	follows *mongo.Collection
}

func NewFollowRepository(db *mongo.Database) *FollowRepository {
	return &FollowRepository{follows: db.Collection("follows")}
}

// Toggle follows or unfollows followee for follower and reports the resulting
// state. The unique (follower, followee) index makes the concurrent
// double-follow collapse into one edge.
func (r *FollowRepository) Toggle(ctx context.Context, followerID, followeeID bson.ObjectID) (bool, error) {
	pair := bson.M{"follower_id": followerID, "followee_id": followeeID}

	res, err := r.follows.DeleteOne(ctx, pair)
	if err != nil {
		return false, err
	}
	if res.DeletedCount == 1 {
		return false, nil
	}

	_, err = r.follows.InsertOne(ctx, model.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		if isDupKey(err) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// Followers lists ids of users following userID.
func (r *FollowRepository) Followers(ctx context.Context, userID bson.ObjectID) ([]bson.ObjectID, error) {
	return r.edgeIDs(ctx, bson.M{"followee_id": userID}, "follower_id")
}

// Following lists ids of users userID follows.
func (r *FollowRepository) Following(ctx context.Context, userID bson.ObjectID) ([]bson.ObjectID, error) {
	return r.edgeIDs(ctx, bson.M{"follower_id": userID}, "followee_id")
}

func (r *FollowRepository) edgeIDs(ctx context.Context, filter bson.M, field string) ([]bson.ObjectID, error) {
	cur, err := r.follows.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var edges []model.Follow
	if err := cur.All(ctx, &edges); err != nil {
		return nil, err
	}

	ids := make([]bson.ObjectID, 0, len(edges))
	for _, e := range edges {
		if field == "follower_id" {
			ids = append(ids, e.FollowerID)
		} else {
			ids = append(ids, e.FolloweeID)
		}
	}
	return ids, nil
}
