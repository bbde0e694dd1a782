package stats

import (
	"github.com/studyflow/studyflow/internal/model"
)

type badgeDef struct {
	check       func(sessions []model.StudySession, dailyStats []model.DailyStat, today string) bool
	id          string
	name        string
	description string
}

// The badge set is fixed. Deep Diver has no check wired up: its description
// promises a per-subject 5-hour threshold that is intentionally never
// evaluated, so the badge stays locked.
var badges = []badgeDef{
	{
		id:          model.BadgeEarlyBird,
		name:        "Early Bird",
		description: "Complete a study session before 8 AM",
		check: func(sessions []model.StudySession, _ []model.DailyStat, _ string) bool {
			return anyCompleted(sessions, func(s *model.StudySession) bool {
				return s.StartTime.Local().Hour() < 8
			})
		},
	},
	{
		id:          model.BadgeNightOwl,
		name:        "Night Owl",
		description: "Complete a study session after 10 PM",
		check: func(sessions []model.StudySession, _ []model.DailyStat, _ string) bool {
			return anyCompleted(sessions, func(s *model.StudySession) bool {
				return s.StartTime.Local().Hour() >= 22
			})
		},
	},
	{
		id:          model.BadgeFocusMarathon,
		name:        "Focus Marathon",
		description: "Study for more than 2 hours in one session",
		check: func(sessions []model.StudySession, _ []model.DailyStat, _ string) bool {
			return anyCompleted(sessions, func(s *model.StudySession) bool {
				return s.DurationSec > 7200
			})
		},
	},
	{
		id:          model.BadgeConsistencyKing,
		name:        "Consistency King",
		description: "Study 3 days in a row",
		check: func(_ []model.StudySession, dailyStats []model.DailyStat, today string) bool {
			return CalcStreaks(dailyStats, today).Longest >= 3
		},
	},
	{
		id:          model.BadgeDeepDiver,
		name:        "Deep Diver",
		description: "Study one subject for 5 hours total",
		check:       nil,
	},
}

// EvaluateAchievements applies the fixed badge predicates over completed
// sessions and the daily ledger. It always returns every badge definition
// with its unlocked state; definitions are never added or removed at runtime.
func EvaluateAchievements(sessions []model.StudySession, dailyStats []model.DailyStat, today string) []model.Achievement {
	results := make([]model.Achievement, 0, len(badges))
	for _, b := range badges {
		unlocked := false
		if b.check != nil {
			unlocked = b.check(sessions, dailyStats, today)
		}
		results = append(results, model.Achievement{
			ID:          b.id,
			Name:        b.name,
			Description: b.description,
			Unlocked:    unlocked,
		})
	}
	return results
}

func anyCompleted(sessions []model.StudySession, pred func(*model.StudySession) bool) bool {
	for i := range sessions {
		if sessions[i].Completed() && pred(&sessions[i]) {
			return true
		}
	}
	return false
}
