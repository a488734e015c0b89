package services

import (
	"github.com/NazirHussain1/inkwell-backend/dto"
	"github.com/NazirHussain1/inkwell-backend/model"
)

// ReactionPlan is the delta a single setReaction call applies to a post's
// reaction maps. It is a deterministic function of the user's previous kind
// and the requested kind, which is what makes retrying the write safe.
type ReactionPlan struct {
	NoOp bool
	// Dec, when non-nil, is the kind whose count drops by one (the user's
	// previous reaction being removed or switched away from).
	Dec *model.ReactionKind
	// Inc, when non-nil, is the kind whose count rises by one and becomes
	// the user's recorded reaction. Nil means the user ends with no
	// reaction (explicit clear).
	Inc *model.ReactionKind
}

// PlanReaction computes the transition for a user whose current reaction is
// previous (nil = none) requesting kind (nil = clear).
//
// Re-submitting the same kind is a no-op: reactions are "set to X or clear",
// unlike comment likes which toggle. Keep that asymmetry.
func PlanReaction(previous, kind *model.ReactionKind) ReactionPlan {
	if equalKind(previous, kind) {
		return ReactionPlan{NoOp: true}
	}
	return ReactionPlan{Dec: previous, Inc: kind}
}

func equalKind(a, b *model.ReactionKind) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// ApplyReactionPlan returns the post-update summary for the caller, built
// from the maps read before the write plus the plan. Zero counts are
// stripped; the stored document may still hold them.
func ApplyReactionPlan(
	reactions map[model.ReactionKind]int,
	reactionsBy map[string]model.ReactionKind,
	userHex string,
	plan ReactionPlan,
) dto.ReactionSummary {
	out := make(map[model.ReactionKind]int, len(reactions)+1)
	for k, n := range reactions {
		out[k] = n
	}
	byCount := len(reactionsBy)
	_, had := reactionsBy[userHex]

	if !plan.NoOp {
		if plan.Dec != nil {
			out[*plan.Dec]--
			if had {
				byCount--
			}
		}
		if plan.Inc != nil {
			out[*plan.Inc]++
			byCount++
		}
	}

	for k, n := range out {
		if n <= 0 {
			delete(out, k)
		}
	}

	var userReaction *model.ReactionKind
	switch {
	case plan.NoOp:
		if k, ok := reactionsBy[userHex]; ok {
			userReaction = &k
		}
	case plan.Inc != nil:
		userReaction = plan.Inc
	}

	return dto.ReactionSummary{
		Reactions:    out,
		UserReaction: userReaction,
		LikesCount:   byCount,
	}
}
