package model

// ReactionKind is one of the fixed reaction types a user can put on a post.
type ReactionKind string

const (
	ReactionLike  ReactionKind = "like"
	ReactionLove  ReactionKind = "love"
	ReactionLaugh ReactionKind = "laugh"
	ReactionWow   ReactionKind = "wow"
	ReactionSad   ReactionKind = "sad"
	ReactionAngry ReactionKind = "angry"
)

var reactionKinds = map[ReactionKind]struct{}{
	ReactionLike:  {},
	ReactionLove:  {},
	ReactionLaugh: {},
	ReactionWow:   {},
	ReactionSad:   {},
	ReactionAngry: {},
}

func ValidReactionKind(k ReactionKind) bool {
	_, ok := reactionKinds[k]
	return ok
}
