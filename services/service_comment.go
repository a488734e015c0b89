package services

import (
	"sort"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/NazirHussain1/inkwell-backend/dto"
	"github.com/NazirHussain1/inkwell-backend/model"
)

// BuildThreads groups a post's comments into top-level threads. Input order
// does not matter. Top-level comments come back newest-first; replies within
// a thread oldest-first (chronological reading order). Replies whose parent
// is missing are dropped. Each comment is marked with whether viewer has
// liked it; pass bson.NilObjectID for anonymous viewers.
func BuildThreads(comments []model.Comment, viewer bson.ObjectID) []dto.CommentThread {
	byParent := make(map[string][]model.Comment)
	var tops []model.Comment
	for _, c := range comments {
		if c.ParentCommentID == nil {
			tops = append(tops, c)
			continue
		}
		key := c.ParentCommentID.Hex()
		byParent[key] = append(byParent[key], c)
	}

	sort.SliceStable(tops, func(i, j int) bool {
		if !tops[i].CreatedAt.Equal(tops[j].CreatedAt) {
			return tops[i].CreatedAt.After(tops[j].CreatedAt)
		}
		return tops[i].ID.Hex() > tops[j].ID.Hex()
	})

	threads := make([]dto.CommentThread, 0, len(tops))
	for _, top := range tops {
		replies := byParent[top.ID.Hex()]
		sort.SliceStable(replies, func(i, j int) bool {
			if !replies[i].CreatedAt.Equal(replies[j].CreatedAt) {
				return replies[i].CreatedAt.Before(replies[j].CreatedAt)
			}
			return replies[i].ID.Hex() < replies[j].ID.Hex()
		})
		annotated := make([]dto.ThreadComment, 0, len(replies))
		for _, r := range replies {
			annotated = append(annotated, dto.ThreadComment{Comment: r, Liked: r.LikedBy(viewer)})
		}
		threads = append(threads, dto.CommentThread{
			ThreadComment: dto.ThreadComment{Comment: top, Liked: top.LikedBy(viewer)},
			Replies:       annotated,
		})
	}
	return threads
}
