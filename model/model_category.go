package model

import "go.mongodb.org/mongo-driver/v2/bson"

type Category struct {
	ID   bson.ObjectID `json:"id"   bson:"_id,omitempty"`
	Name string        `json:"name" bson:"name"`
	Slug string        `json:"slug" bson:"slug"`
}

// PostHashtag is one row per (post, tag), written when a post is published.
// Date is "YYYY-MM-DD" so trending windows can match on it directly.
type PostHashtag struct {
	PostID bson.ObjectID `json:"postId" bson:"post_id"`
	Tag    string        `json:"tag"    bson:"tag"`
	Date   string        `json:"date"   bson:"date"`
}
