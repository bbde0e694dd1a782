package model

// Preferences holds user-tunable settings persisted in the durable store.
type Preferences struct {
	Theme        string
	DailyGoalMin int
}

// DefaultPreferences returns the settings used when none have been saved yet.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:        "dark",
		DailyGoalMin: 60,
	}
}
