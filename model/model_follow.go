package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Follow struct {
	ID         bson.ObjectID `json:"id"         bson:"_id,omitempty"`
	FollowerID bson.ObjectID `json:"followerId" bson:"follower_id"`
	FolloweeID bson.ObjectID `json:"followeeId" bson:"followee_id"`
	CreatedAt  time.Time     `json:"createdAt"  bson:"created_at"`
}
