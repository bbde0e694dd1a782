package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/studyflow/studyflow/internal/model"
)

// GetPreferences returns the saved user preferences, or the defaults when
// none have been saved yet. A missing row is absence, not an error.
func (s *SQLiteStorage) GetPreferences(ctx context.Context) (*model.Preferences, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var prefs model.Preferences
	err := s.db.QueryRowContext(ctx, `
		SELECT theme, daily_goal_min FROM preferences WHERE id = 1`,
	).Scan(&prefs.Theme, &prefs.DailyGoalMin)
	if errors.Is(err, sql.ErrNoRows) {
		defaults := model.DefaultPreferences()
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query preferences: %w", err)
	}
	return &prefs, nil
}

// SavePreferences upserts the single preferences row.
func (s *SQLiteStorage) SavePreferences(ctx context.Context, prefs *model.Preferences) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if prefs == nil {
		return fmt.Errorf("%w: preferences", ErrNilParameter)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (id, theme, daily_goal_min) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET theme = excluded.theme, daily_goal_min = excluded.daily_goal_min`,
		prefs.Theme, prefs.DailyGoalMin,
	)
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}
