package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/NazirHussain1/inkwell-backend/dto"
	"github.com/NazirHussain1/inkwell-backend/internal/repository"
	"github.com/NazirHussain1/inkwell-backend/model"
)

// Narrow store interfaces so handlers can be exercised with fakes. The Mongo
// repositories in internal/repository implement them.

type PostFinder interface {
	FindBySlug(ctx context.Context, slug string) (*model.Post, error)
}

type PostStore interface {
	PostFinder
	Create(ctx context.Context, authorID bson.ObjectID, title, body string, tags []string, categoryIDs []bson.ObjectID) (*model.Post, error)
	Update(ctx context.Context, id bson.ObjectID, title, body string, tags []string) (*model.Post, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	ListFeed(ctx context.Context, opts repository.FeedOptions) ([]model.Post, *string, error)
}

type CommentStore interface {
	ListThreads(ctx context.Context, postID, viewer bson.ObjectID) ([]dto.CommentThread, error)
	Create(ctx context.Context, postID, userID bson.ObjectID, text string, parentID *bson.ObjectID) (*model.Comment, error)
	ToggleLike(ctx context.Context, commentID, userID bson.ObjectID) (bool, error)
	DeleteByPost(ctx context.Context, postID bson.ObjectID) error
}

type ReactionStore interface {
	Set(ctx context.Context, postID, userID bson.ObjectID, kind *model.ReactionKind) (*dto.ReactionSummary, error)
}

type UserStore interface {
	Create(ctx context.Context, username, email, passwordHash, bio string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	Exists(ctx context.Context, id bson.ObjectID) (bool, error)
}

type FollowStore interface {
	Toggle(ctx context.Context, followerID, followeeID bson.ObjectID) (bool, error)
	Followers(ctx context.Context, userID bson.ObjectID) ([]bson.ObjectID, error)
	Following(ctx context.Context, userID bson.ObjectID) ([]bson.ObjectID, error)
}

type TrendingStore interface {
	TopHashtagsToday(ctx context.Context, k int) ([]dto.TrendingHashtag, error)
	TopHashtagsAllTime(ctx context.Context, k int) ([]dto.TrendingHashtag, error)
}

type CategoryStore interface {
	List(ctx context.Context) ([]model.Category, error)
	FindBySlug(ctx context.Context, slug string) (*model.Category, error)
}
