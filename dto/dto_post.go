package dto

import "github.com/NazirHussain1/inkwell-backend/model"

type CreatePostReq struct {
	Title       string   `json:"title"       validate:"required,min=1,max=200"`
	Body        string   `json:"body"        validate:"required,min=1"`
	Tags        []string `json:"tags"        validate:"max=10,dive,min=1,max=40"`
	CategoryIDs []string `json:"categoryIds" validate:"max=5,dive,len=24,hexadecimal"`
}

type UpdatePostReq struct {
	Title string   `json:"title" validate:"omitempty,min=1,max=200"`
	Body  string   `json:"body"  validate:"omitempty,min=1"`
	Tags  []string `json:"tags"  validate:"max=10,dive,min=1,max=40"`
}

type PostResp struct {
	model.Post
	// Reactions replaces the embedded map with zero counts stripped.
	Reactions map[model.ReactionKind]int `json:"reactions"`
}
