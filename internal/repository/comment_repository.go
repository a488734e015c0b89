package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/NazirHussain1/inkwell-backend/dto"
	"github.com/NazirHussain1/inkwell-backend/model"
	"github.com/NazirHussain1/inkwell-backend/services"
)

type CommentRepository struct {
	comments *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{comments: db.Collection("comments")}
}

// ListThreads returns every thread on a post: top-level comments
// newest-first, replies oldest-first, each marked with viewer's like.
func (r *CommentRepository) ListThreads(ctx context.Context, postID, viewer bson.ObjectID) ([]dto.CommentThread, error) {
	cur, err := r.comments.Find(ctx,
		bson.M{"post_id": postID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []model.Comment
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return services.BuildThreads(items, viewer), nil
}

// Create persists a new comment with an empty like set. A non-nil parentID
// must reference a top-level comment on the same post.
func (r *CommentRepository) Create(ctx context.Context, postID, userID bson.ObjectID, text string, parentID *bson.ObjectID) (*model.Comment, error) {
	text = strings.TrimSpace(text)

	if parentID != nil {
		var parent model.Comment
		err := r.comments.FindOne(ctx, bson.M{"_id": *parentID}).Decode(&parent)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidParent
		}
		if err != nil {
			return nil, err
		}
		if parent.PostID != postID || parent.ParentCommentID != nil {
			return nil, ErrInvalidParent
		}
	}

	com := model.Comment{
		PostID:          postID,
		UserID:          userID,
		Text:            text,
		ParentCommentID: parentID,
		Likes:           []bson.ObjectID{},
		CreatedAt:       time.Now().UTC(),
	}
	res, err := r.comments.InsertOne(ctx, com)
	if err != nil {
		return nil, err
	}
	com.ID = res.InsertedID.(bson.ObjectID)
	return &com, nil
}

// ToggleLike flips userID's membership in the comment's like set and reports
// the resulting state. Both arms are single atomic updates ($pull / $addToSet)
// so concurrent toggles never lose a like.
func (r *CommentRepository) ToggleLike(ctx context.Context, commentID, userID bson.ObjectID) (bool, error) {
	res, err := r.comments.UpdateOne(ctx,
		bson.M{"_id": commentID, "likes": userID},
		bson.M{"$pull": bson.M{"likes": userID}},
	)
	if err != nil {
		return false, err
	}
	if res.ModifiedCount == 1 {
		return false, nil
	}

	res, err = r.comments.UpdateOne(ctx,
		bson.M{"_id": commentID},
		bson.M{"$addToSet": bson.M{"likes": userID}},
	)
	if err != nil {
		return false, err
	}
	if res.MatchedCount == 0 {
		return false, ErrNotFound
	}
	return true, nil
}

// DeleteByPost removes every comment on a post. Called from the post-delete
// cascade.
func (r *CommentRepository) DeleteByPost(ctx context.Context, postID bson.ObjectID) error {
	_, err := r.comments.DeleteMany(ctx, bson.M{"post_id": postID})
	return err
}
