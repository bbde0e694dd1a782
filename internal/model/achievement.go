package model

// Achievement badge identifiers. The set is fixed; evaluation only flips the
// Unlocked flag, it never adds or removes definitions.
const (
	BadgeEarlyBird       = "early_bird"
	BadgeNightOwl        = "night_owl"
	BadgeFocusMarathon   = "focus_marathon"
	BadgeConsistencyKing = "consistency_king"
	BadgeDeepDiver       = "deep_diver"
)

// Achievement is one badge with its unlock state.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Unlocked    bool
}
