package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/NazirHussain1/inkwell-backend/dto"
	"github.com/NazirHussain1/inkwell-backend/model"
	"github.com/NazirHussain1/inkwell-backend/services"
)

// ReactionRepository owns the reactions / reactions_by fields on post
// documents.
type ReactionRepository struct {
	posts *mongo.Collection
}

func NewReactionRepository(db *mongo.Database) *ReactionRepository {
	return &ReactionRepository{posts: db.Collection("posts")}
}

const setReactionRetries = 3

// Set applies the set/switch/clear transition for one user on one post and
// returns the updated tally plus the caller's own reaction.
//
// The write carries all $inc/$set/$unset pieces in a single UpdateOne whose
// filter asserts the user's reactions_by entry is still the value we read.
// A same-user race loses the match and retries; different users touch
// different map keys and never conflict.
func (r *ReactionRepository) Set(ctx context.Context, postID, userID bson.ObjectID, kind *model.ReactionKind) (*dto.ReactionSummary, error) {
	if kind != nil && !model.ValidReactionKind(*kind) {
		return nil, ErrInvalidReaction
	}

	userHex := userID.Hex()
	field := "reactions_by." + userHex

	for attempt := 0; attempt < setReactionRetries; attempt++ {
		var doc struct {
			Reactions   map[model.ReactionKind]int    `bson:"reactions"`
			ReactionsBy map[string]model.ReactionKind `bson:"reactions_by"`
		}
		err := r.posts.FindOne(ctx,
			bson.M{"_id": postID},
			options.FindOne().SetProjection(bson.M{"reactions": 1, "reactions_by": 1}),
		).Decode(&doc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, err
		}

		var previous *model.ReactionKind
		if prev, ok := doc.ReactionsBy[userHex]; ok {
			previous = &prev
		}

		plan := services.PlanReaction(previous, kind)
		summary := services.ApplyReactionPlan(doc.Reactions, doc.ReactionsBy, userHex, plan)
		if plan.NoOp {
			return &summary, nil
		}

		filter := bson.M{"_id": postID}
		if previous != nil {
			filter[field] = *previous
		} else {
			filter[field] = bson.M{"$exists": false}
		}

		inc := bson.M{}
		update := bson.M{}
		if plan.Dec != nil {
			inc["reactions."+string(*plan.Dec)] = -1
		}
		if plan.Inc != nil {
			// $set overwrites the old entry, so no $unset is needed on a
			// switch; Mongo rejects $set+$unset on the same path anyway.
			inc["reactions."+string(*plan.Inc)] = 1
			update["$set"] = bson.M{field: *plan.Inc}
		} else {
			update["$unset"] = bson.M{field: ""}
		}
		update["$inc"] = inc

		res, err := r.posts.UpdateOne(ctx, filter, update)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 1 {
			return &summary, nil
		}
		// Lost a race against another write from the same user; re-read.
	}
	return nil, ErrConflict
}
