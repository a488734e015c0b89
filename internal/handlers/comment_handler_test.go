package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/NazirHussain1/inkwell-backend/dto"
	"github.com/NazirHussain1/inkwell-backend/internal/repository"
	"github.com/NazirHussain1/inkwell-backend/internal/validator"
	"github.com/NazirHussain1/inkwell-backend/model"
	"github.com/NazirHussain1/inkwell-backend/services"
)

type fakePosts struct {
	findBySlug func(slug string) (*model.Post, error)
}

func (f *fakePosts) FindBySlug(_ context.Context, slug string) (*model.Post, error) {
	return f.findBySlug(slug)
}

// fakeComments keeps a real like set so toggle semantics are observable
// across calls. Listing runs the real thread assembly so viewer annotation
// is exercised end to end.
type fakeComments struct {
	comments []model.Comment
	created  []model.Comment
	likes    map[string]map[string]bool // commentHex -> userHex -> liked
	known    map[string]bool
	parentOK bool
}

func newFakeComments() *fakeComments {
	return &fakeComments{
		likes:    map[string]map[string]bool{},
		known:    map[string]bool{},
		parentOK: true,
	}
}

func (f *fakeComments) ListThreads(_ context.Context, _ bson.ObjectID, viewer bson.ObjectID) ([]dto.CommentThread, error) {
	return services.BuildThreads(f.comments, viewer), nil
}

func (f *fakeComments) Create(_ context.Context, postID, userID bson.ObjectID, text string, parentID *bson.ObjectID) (*model.Comment, error) {
	if parentID != nil && !f.parentOK {
		return nil, repository.ErrInvalidParent
	}
	com := model.Comment{
		ID:              bson.NewObjectID(),
		PostID:          postID,
		UserID:          userID,
		Text:            text,
		ParentCommentID: parentID,
		Likes:           []bson.ObjectID{},
		CreatedAt:       time.Now().UTC(),
	}
	f.created = append(f.created, com)
	return &com, nil
}

func (f *fakeComments) ToggleLike(_ context.Context, commentID, userID bson.ObjectID) (bool, error) {
	if !f.known[commentID.Hex()] {
		return false, repository.ErrNotFound
	}
	set := f.likes[commentID.Hex()]
	if set == nil {
		set = map[string]bool{}
		f.likes[commentID.Hex()] = set
	}
	if set[userID.Hex()] {
		delete(set, userID.Hex())
		return false, nil
	}
	set[userID.Hex()] = true
	return true, nil
}

func (f *fakeComments) DeleteByPost(_ context.Context, _ bson.ObjectID) error {
	return nil
}

func withUser(uid string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if uid != "" {
			c.Locals("user_id", uid)
		}
		return c.Next()
	}
}

func newCommentApp(t *testing.T, posts PostFinder, comments CommentStore, uid string) *fiber.App {
	t.Helper()
	h := &CommentHandler{
		Posts:    posts,
		Comments: comments,
		Validate: validator.New(),
		Log:      slogt.New(t),
	}
	app := fiber.New()
	app.Use(withUser(uid))
	app.Get("/api/posts/:slug/comments", h.List)
	app.Post("/api/posts/:slug/comments", h.Create)
	app.Put("/api/posts/:slug/comments", h.ToggleLike)
	return app
}

func postWithSlug(slug string) *fakePosts {
	post := &model.Post{ID: bson.NewObjectID(), Slug: slug}
	return &fakePosts{findBySlug: func(s string) (*model.Post, error) {
		if s != slug {
			return nil, repository.ErrNotFound
		}
		return post, nil
	}}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestCommentList(t *testing.T) {
	top := model.Comment{
		ID:        bson.NewObjectID(),
		PostID:    bson.NewObjectID(),
		UserID:    bson.NewObjectID(),
		Text:      "hello",
		Likes:     []bson.ObjectID{},
		CreatedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	fc := newFakeComments()
	fc.comments = []model.Comment{top}

	app := newCommentApp(t, postWithSlug("my-post"), fc, "")

	status, raw := doJSON(t, app, "GET", "/api/posts/my-post/comments", nil)
	require.Equal(t, 200, status)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got, 1)
	want := map[string]any{
		"id":        top.ID.Hex(),
		"postId":    top.PostID.Hex(),
		"userId":    top.UserID.Hex(),
		"text":      "hello",
		"likes":     []any{},
		"createdAt": "2026-01-02T00:00:00Z",
		"liked":     false,
		"replies":   []any{},
	}
	if diff := cmp.Diff(want, got[0]); diff != "" {
		t.Errorf("thread mismatch (-want +got):\n%s", diff)
	}
}

func TestCommentListMarksCallerLikes(t *testing.T) {
	uid := bson.NewObjectID()
	mine := model.Comment{
		ID:        bson.NewObjectID(),
		PostID:    bson.NewObjectID(),
		UserID:    bson.NewObjectID(),
		Text:      "liked by me",
		Likes:     []bson.ObjectID{uid},
		CreatedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	other := model.Comment{
		ID:        bson.NewObjectID(),
		PostID:    mine.PostID,
		UserID:    bson.NewObjectID(),
		Text:      "liked by someone else",
		Likes:     []bson.ObjectID{bson.NewObjectID()},
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	fc := newFakeComments()
	fc.comments = []model.Comment{mine, other}

	app := newCommentApp(t, postWithSlug("my-post"), fc, uid.Hex())

	status, raw := doJSON(t, app, "GET", "/api/posts/my-post/comments", nil)
	require.Equal(t, 200, status)

	var got []dto.CommentThread
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got, 2)
	assert.True(t, got[0].Liked)
	assert.False(t, got[1].Liked)
}

func TestCommentListUnknownPost(t *testing.T) {
	app := newCommentApp(t, postWithSlug("my-post"), newFakeComments(), "")
	status, _ := doJSON(t, app, "GET", "/api/posts/nope/comments", nil)
	assert.Equal(t, 404, status)
}

func TestCommentCreate(t *testing.T) {
	uid := bson.NewObjectID()
	fc := newFakeComments()
	app := newCommentApp(t, postWithSlug("my-post"), fc, uid.Hex())

	status, raw := doJSON(t, app, "POST", "/api/posts/my-post/comments",
		dto.CreateCommentReq{Text: "  hello  "})
	require.Equal(t, 200, status)

	var resp dto.CreateCommentResp
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, "comment added", resp.Message)
	assert.Equal(t, "hello", resp.Comment.Text)
	assert.Nil(t, resp.Comment.ParentCommentID)
	require.Len(t, fc.created, 1)
	assert.Equal(t, uid, fc.created[0].UserID)
}

func TestCommentCreateUnauthorized(t *testing.T) {
	app := newCommentApp(t, postWithSlug("my-post"), newFakeComments(), "")
	status, _ := doJSON(t, app, "POST", "/api/posts/my-post/comments",
		dto.CreateCommentReq{Text: "hello"})
	assert.Equal(t, 401, status)
}

func TestCommentCreateEmptyText(t *testing.T) {
	uid := bson.NewObjectID()
	app := newCommentApp(t, postWithSlug("my-post"), newFakeComments(), uid.Hex())
	status, _ := doJSON(t, app, "POST", "/api/posts/my-post/comments",
		dto.CreateCommentReq{Text: "   "})
	assert.Equal(t, 400, status)
}

func TestCommentCreateInvalidParent(t *testing.T) {
	uid := bson.NewObjectID()
	fc := newFakeComments()
	fc.parentOK = false
	app := newCommentApp(t, postWithSlug("my-post"), fc, uid.Hex())

	status, _ := doJSON(t, app, "POST", "/api/posts/my-post/comments",
		dto.CreateCommentReq{Text: "hi back", ParentComment: bson.NewObjectID().Hex()})
	assert.Equal(t, 400, status)
}

func TestCommentToggleLikeTwiceReturnsToOriginal(t *testing.T) {
	uid := bson.NewObjectID()
	cid := bson.NewObjectID()
	fc := newFakeComments()
	fc.known[cid.Hex()] = true
	app := newCommentApp(t, postWithSlug("my-post"), fc, uid.Hex())

	body := dto.ToggleCommentLikeReq{CommentID: cid.Hex()}

	status, raw := doJSON(t, app, "PUT", "/api/posts/my-post/comments", body)
	require.Equal(t, 200, status)
	var resp dto.ToggleLikeResp
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.True(t, resp.Liked)

	status, raw = doJSON(t, app, "PUT", "/api/posts/my-post/comments", body)
	require.Equal(t, 200, status)
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.False(t, resp.Liked)
	assert.Empty(t, fc.likes[cid.Hex()])
}

func TestCommentToggleLikeNotFound(t *testing.T) {
	uid := bson.NewObjectID()
	app := newCommentApp(t, postWithSlug("my-post"), newFakeComments(), uid.Hex())

	status, _ := doJSON(t, app, "PUT", "/api/posts/my-post/comments",
		dto.ToggleCommentLikeReq{CommentID: bson.NewObjectID().Hex()})
	assert.Equal(t, 404, status)
}

func TestCommentToggleLikeUnauthorized(t *testing.T) {
	app := newCommentApp(t, postWithSlug("my-post"), newFakeComments(), "")
	status, _ := doJSON(t, app, "PUT", "/api/posts/my-post/comments",
		dto.ToggleCommentLikeReq{CommentID: bson.NewObjectID().Hex()})
	assert.Equal(t, 401, status)
}
