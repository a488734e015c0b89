package dto

import "github.com/NazirHussain1/inkwell-backend/model"

type CreateCommentReq struct {
	Text          string `json:"text"          validate:"required,min=1,max=2000"`
	ParentComment string `json:"parentComment" validate:"omitempty,len=24,hexadecimal"`
}

type ToggleCommentLikeReq struct {
	CommentID string `json:"commentId" validate:"required,len=24,hexadecimal"`
}

type CreateCommentResp struct {
	Message string        `json:"message"`
	Comment model.Comment `json:"comment"`
}

type ToggleLikeResp struct {
	Liked bool `json:"liked"`
}

// ThreadComment is a comment annotated with whether the viewer has liked
// it. Anonymous viewers always see liked=false.
type ThreadComment struct {
	model.Comment
	Liked bool `json:"liked"`
}

// CommentThread is a top-level comment with its replies in chronological
// reading order.
type CommentThread struct {
	ThreadComment
	Replies []ThreadComment `json:"replies"`
}
