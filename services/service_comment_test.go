package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/NazirHussain1/inkwell-backend/model"
)

func comment(id bson.ObjectID, parent *bson.ObjectID, at time.Time) model.Comment {
	return model.Comment{
		ID:              id,
		PostID:          bson.NewObjectID(),
		UserID:          bson.NewObjectID(),
		Text:            "text",
		ParentCommentID: parent,
		CreatedAt:       at,
	}
}

func TestBuildThreadsShape(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	c1 := comment(bson.NewObjectID(), nil, base)
	c2 := comment(bson.NewObjectID(), nil, base.Add(time.Hour))
	r1 := comment(bson.NewObjectID(), &c1.ID, base.Add(2*time.Hour))
	r2 := comment(bson.NewObjectID(), &c1.ID, base.Add(30*time.Minute))

	threads := BuildThreads([]model.Comment{r1, c1, r2, c2}, bson.NilObjectID)
	require.Len(t, threads, 2)

	// Top-level newest-first.
	assert.Equal(t, c2.ID, threads[0].ID)
	assert.Equal(t, c1.ID, threads[1].ID)
	assert.Empty(t, threads[0].Replies)

	// Replies oldest-first, all pointing at their thread.
	require.Len(t, threads[1].Replies, 2)
	assert.Equal(t, r2.ID, threads[1].Replies[0].ID)
	assert.Equal(t, r1.ID, threads[1].Replies[1].ID)
	for _, r := range threads[1].Replies {
		require.NotNil(t, r.ParentCommentID)
		assert.Equal(t, c1.ID, *r.ParentCommentID)
	}
}

func TestBuildThreadsDropsOrphans(t *testing.T) {
	missing := bson.NewObjectID()
	orphan := comment(bson.NewObjectID(), &missing, time.Now().UTC())

	threads := BuildThreads([]model.Comment{orphan}, bson.NilObjectID)
	assert.Empty(t, threads)
}

func TestBuildThreadsScenario(t *testing.T) {
	// addComment(P1,U1,"hello") then addComment(P1,U2,"hi back",parent=C1)
	// must list as one thread with one reply.
	base := time.Now().UTC()
	c1 := comment(bson.NewObjectID(), nil, base)
	c1.Text = "hello"
	c2 := comment(bson.NewObjectID(), &c1.ID, base.Add(time.Minute))
	c2.Text = "hi back"

	threads := BuildThreads([]model.Comment{c1, c2}, bson.NilObjectID)
	require.Len(t, threads, 1)
	assert.Equal(t, "hello", threads[0].Text)
	require.Len(t, threads[0].Replies, 1)
	assert.Equal(t, "hi back", threads[0].Replies[0].Text)
}

func TestBuildThreadsMarksViewerLikes(t *testing.T) {
	viewer := bson.NewObjectID()
	base := time.Now().UTC()

	top := comment(bson.NewObjectID(), nil, base)
	top.Likes = []bson.ObjectID{viewer, bson.NewObjectID()}
	reply := comment(bson.NewObjectID(), &top.ID, base.Add(time.Minute))
	reply.Likes = []bson.ObjectID{bson.NewObjectID()}

	threads := BuildThreads([]model.Comment{top, reply}, viewer)
	require.Len(t, threads, 1)
	assert.True(t, threads[0].Liked)
	require.Len(t, threads[0].Replies, 1)
	assert.False(t, threads[0].Replies[0].Liked)

	// Anonymous viewers never see a like.
	threads = BuildThreads([]model.Comment{top, reply}, bson.NilObjectID)
	assert.False(t, threads[0].Liked)
}

func TestBuildThreadsEmpty(t *testing.T) {
	assert.Empty(t, BuildThreads(nil, bson.NilObjectID))
}
