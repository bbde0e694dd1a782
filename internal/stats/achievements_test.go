package stats

import (
	"testing"
	"time"

	"github.com/studyflow/studyflow/internal/model"
)

func unlockedSet(achievements []model.Achievement) map[string]bool {
	set := make(map[string]bool, len(achievements))
	for _, a := range achievements {
		set[a.ID] = a.Unlocked
	}
	return set
}

func TestEvaluateAchievements(t *testing.T) {
	today := day(0)

	tests := []struct {
		wantUnlocked map[string]bool
		name         string
		sessions     []model.StudySession
		dailyStats   []model.DailyStat
	}{
		{
			name:     "no history unlocks nothing",
			sessions: nil,
			wantUnlocked: map[string]bool{
				model.BadgeEarlyBird:       false,
				model.BadgeNightOwl:        false,
				model.BadgeFocusMarathon:   false,
				model.BadgeConsistencyKing: false,
				model.BadgeDeepDiver:       false,
			},
		},
		{
			name: "early bird at 7am",
			sessions: []model.StudySession{
				completedSession(time.Date(2026, 3, 20, 7, 59, 0, 0, time.Local), 600),
			},
			wantUnlocked: map[string]bool{model.BadgeEarlyBird: true},
		},
		{
			name: "8am start is not early bird",
			sessions: []model.StudySession{
				completedSession(time.Date(2026, 3, 20, 8, 0, 0, 0, time.Local), 600),
			},
			wantUnlocked: map[string]bool{model.BadgeEarlyBird: false},
		},
		{
			name: "night owl at 10pm",
			sessions: []model.StudySession{
				completedSession(time.Date(2026, 3, 20, 22, 0, 0, 0, time.Local), 600),
			},
			wantUnlocked: map[string]bool{model.BadgeNightOwl: true},
		},
		{
			name: "focus marathon requires strictly more than two hours",
			sessions: []model.StudySession{
				completedSession(time.Date(2026, 3, 20, 12, 0, 0, 0, time.Local), 7200),
			},
			wantUnlocked: map[string]bool{model.BadgeFocusMarathon: false},
		},
		{
			name: "focus marathon at 7201 seconds",
			sessions: []model.StudySession{
				completedSession(time.Date(2026, 3, 20, 12, 0, 0, 0, time.Local), 7201),
			},
			wantUnlocked: map[string]bool{model.BadgeFocusMarathon: true},
		},
		{
			name: "consistency king needs a 3-day streak",
			dailyStats: []model.DailyStat{
				{Date: day(-2), TotalStudySec: 300},
				{Date: day(-1), TotalStudySec: 300},
				{Date: day(0), TotalStudySec: 300},
			},
			wantUnlocked: map[string]bool{model.BadgeConsistencyKing: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateAchievements(tt.sessions, tt.dailyStats, today)

			if len(got) != 5 {
				t.Fatalf("expected the full fixed badge set (5), got %d", len(got))
			}

			set := unlockedSet(got)
			for id, want := range tt.wantUnlocked {
				if set[id] != want {
					t.Errorf("badge %s unlocked = %v, want %v", id, set[id], want)
				}
			}
		})
	}
}

func TestEvaluateAchievements_ActiveSessionsIgnored(t *testing.T) {
	active := model.StudySession{
		ID:        "active",
		SubjectID: "subj-1",
		StartTime: time.Date(2026, 3, 20, 6, 0, 0, 0, time.Local),
	}

	got := EvaluateAchievements([]model.StudySession{active}, nil, day(0))

	if unlockedSet(got)[model.BadgeEarlyBird] {
		t.Error("an unfinished session must not unlock Early Bird")
	}
}

func TestEvaluateAchievements_DeepDiverStaysLocked(t *testing.T) {
	// Deep Diver's threshold is never evaluated, even with abundant history.
	sessions := []model.StudySession{
		completedSession(time.Date(2026, 3, 18, 9, 0, 0, 0, time.Local), 18000),
		completedSession(time.Date(2026, 3, 19, 9, 0, 0, 0, time.Local), 18000),
	}
	dailyStats := []model.DailyStat{
		{Date: day(-2), TotalStudySec: 18000, SubjectIDs: []string{"subj-1"}},
		{Date: day(-1), TotalStudySec: 18000, SubjectIDs: []string{"subj-1"}},
	}

	got := EvaluateAchievements(sessions, dailyStats, day(0))

	if unlockedSet(got)[model.BadgeDeepDiver] {
		t.Error("Deep Diver must remain locked")
	}
}
