package dto

import "github.com/NazirHussain1/inkwell-backend/model"

type SetReactionReq struct {
	// Reaction is the kind to set, or null to clear the caller's reaction.
	Reaction *model.ReactionKind `json:"reaction"`
}

type ReactionSummary struct {
	Reactions    map[model.ReactionKind]int `json:"reactions"`
	UserReaction *model.ReactionKind        `json:"userReaction"`
	LikesCount   int                        `json:"likesCount"`
}
