package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Post struct {
	ID         bson.ObjectID   `json:"id"        bson:"_id,omitempty"`
	Slug       string          `json:"slug"      bson:"slug"`
	AuthorID   bson.ObjectID   `json:"authorId"  bson:"author_id"`
	Title      string          `json:"title"     bson:"title"`
	Body       string          `json:"body"      bson:"body"`
	Tags       []string        `json:"tags"      bson:"tags,omitempty"`
	Categories []bson.ObjectID `json:"categories" bson:"categories,omitempty"`
	CreatedAt  time.Time       `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time       `json:"updatedAt" bson:"updated_at"`

	// Reactions maps kind -> count. Decrements leave zero entries behind;
	// readers strip them before responding.
	Reactions map[ReactionKind]int `json:"reactions" bson:"reactions,omitempty"`
	// ReactionsBy maps user id hex -> the single kind that user has on this
	// post. Invariant: sum of non-zero Reactions counts == len(ReactionsBy).
	ReactionsBy map[string]ReactionKind `json:"-" bson:"reactions_by,omitempty"`
}
