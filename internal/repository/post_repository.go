package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/NazirHussain1/inkwell-backend/configs"
	"github.com/NazirHussain1/inkwell-backend/internal/cursor"
	"github.com/NazirHussain1/inkwell-backend/internal/utils"
	"github.com/NazirHussain1/inkwell-backend/model"
)

type PostRepository struct {
	posts    *mongo.Collection
	hashtags *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{
		posts:    db.Collection("posts"),
		hashtags: db.Collection("hashtags"),
	}
}

func (r *PostRepository) FindBySlug(ctx context.Context, slug string) (*model.Post, error) {
	var post model.Post
	err := r.posts.FindOne(ctx, bson.M{"slug": slug}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Create inserts the post and its hashtag rows. The slug comes from the title
// with a random suffix; on the (tiny) chance of a collision the insert is
// retried with a fresh suffix.
func (r *PostRepository) Create(ctx context.Context, authorID bson.ObjectID, title, body string, tags []string, categoryIDs []bson.ObjectID) (*model.Post, error) {
	now := time.Now().UTC()
	post := model.Post{
		AuthorID:   authorID,
		Title:      title,
		Body:       body,
		Tags:       tags,
		Categories: categoryIDs,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	var res *mongo.InsertOneResult
	var err error
	for attempt := 0; attempt < 3; attempt++ {
		post.Slug = utils.Slugify(title)
		res, err = r.posts.InsertOne(ctx, post)
		if err == nil {
			break
		}
		if !isDupKey(err) {
			return nil, err
		}
	}
	if err != nil {
		return nil, ErrDuplicate
	}
	post.ID = res.InsertedID.(bson.ObjectID)

	if err := r.insertHashtags(ctx, post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) insertHashtags(ctx context.Context, post model.Post) error {
	hashtags := utils.ExtractHashtags(post.Body)
	if len(hashtags) == 0 {
		return nil
	}
	dateOnly := post.CreatedAt.Format("2006-01-02")
	docs := make([]interface{}, 0, len(hashtags))
	for _, tag := range hashtags {
		docs = append(docs, model.PostHashtag{
			PostID: post.ID,
			Tag:    tag,
			Date:   dateOnly,
		})
	}
	_, err := r.hashtags.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

// Update edits title/body/tags. Slug is immutable once set. Returns the
// updated post, ErrNotFound when the post is gone.
func (r *PostRepository) Update(ctx context.Context, id bson.ObjectID, title, body string, tags []string) (*model.Post, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if title != "" {
		set["title"] = title
	}
	if body != "" {
		set["body"] = body
	}
	if tags != nil {
		set["tags"] = tags
	}

	var post model.Post
	err := r.posts.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes the post and its hashtag rows. Comment cascade is the
// caller's job (post handler) so this package keeps one collection per repo.
func (r *PostRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.posts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	_, err = r.hashtags.DeleteMany(ctx, bson.M{"post_id": id})
	return err
}

// FeedOptions filter the newest-first post feed.
type FeedOptions struct {
	Tag      string
	Category bson.ObjectID
	AuthorID bson.ObjectID
	Limit    int64
	Cursor   string
}

// ListFeed returns posts newest-first with keyset pagination on
// (created_at, _id). The second return is the cursor for the next page, nil
// when the page was not full.
func (r *PostRepository) ListFeed(ctx context.Context, opts FeedOptions) ([]model.Post, *string, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = configs.DefaultLimitFeed
	}
	if limit > configs.MaxLimitFeed {
		limit = configs.MaxLimitFeed
	}

	filter := bson.M{}
	if opts.Tag != "" {
		filter["tags"] = opts.Tag
	}
	if opts.Category != (bson.ObjectID{}) {
		filter["categories"] = opts.Category
	}
	if opts.AuthorID != (bson.ObjectID{}) {
		filter["author_id"] = opts.AuthorID
	}
	if opts.Cursor != "" {
		t, id, err := cursor.Decode(opts.Cursor)
		if err != nil {
			return nil, nil, err
		}
		filter["$or"] = []bson.M{
			{"created_at": bson.M{"$lt": t}},
			{"created_at": t, "_id": bson.M{"$lt": id}},
		}
	}

	cur, err := r.posts.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit),
	)
	if err != nil {
		return nil, nil, err
	}
	defer cur.Close(ctx)

	var items []model.Post
	if err := cur.All(ctx, &items); err != nil {
		return nil, nil, err
	}

	var next *string
	if int64(len(items)) == limit {
		last := items[len(items)-1]
		s := cursor.Encode(last.CreatedAt, last.ID)
		next = &s
	}
	return items, next, nil
}
