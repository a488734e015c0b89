package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID              bson.ObjectID   `json:"id"        bson:"_id,omitempty"`
	PostID          bson.ObjectID   `json:"postId"    bson:"post_id"`
	UserID          bson.ObjectID   `json:"userId"    bson:"user_id"`
	Text            string          `json:"text"      bson:"text"`
	ParentCommentID *bson.ObjectID  `json:"parentCommentId,omitempty" bson:"parent_comment_id,omitempty"`
	Likes           []bson.ObjectID `json:"likes"     bson:"likes"`
	CreatedAt       time.Time       `json:"createdAt" bson:"created_at"`
}

// LikedBy reports whether uid is in the comment's like set.
func (c Comment) LikedBy(uid bson.ObjectID) bool {
	for _, id := range c.Likes {
		if id == uid {
			return true
		}
	}
	return false
}
