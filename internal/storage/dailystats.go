package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/studyflow/studyflow/internal/common"
	"github.com/studyflow/studyflow/internal/model"
)

// GetDailyStat returns the aggregate for one date, or common.ErrNotFound.
func (s *SQLiteStorage) GetDailyStat(ctx context.Context, date string) (*model.DailyStat, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(date, "date"); err != nil {
		return nil, err
	}

	var stat model.DailyStat
	var subjectIDsJSON string
	err := s.db.QueryRowContext(ctx, `
		SELECT date, total_study_sec, sessions_count, subject_ids
		FROM daily_stats WHERE date = ?`, date,
	).Scan(&stat.Date, &stat.TotalStudySec, &stat.SessionsCount, &subjectIDsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query daily stat: %w", err)
	}

	if err := json.Unmarshal([]byte(subjectIDsJSON), &stat.SubjectIDs); err != nil {
		return nil, fmt.Errorf("failed to decode subject ids for %s: %w", date, err)
	}
	return &stat, nil
}

// ListDailyStats returns the full ledger, most recent date first.
func (s *SQLiteStorage) ListDailyStats(ctx context.Context) ([]model.DailyStat, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT date, total_study_sec, sessions_count, subject_ids
		FROM daily_stats ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var stats []model.DailyStat
	for rows.Next() {
		var stat model.DailyStat
		var subjectIDsJSON string
		if err := rows.Scan(&stat.Date, &stat.TotalStudySec, &stat.SessionsCount, &subjectIDsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan daily stat: %w", err)
		}
		if err := json.Unmarshal([]byte(subjectIDsJSON), &stat.SubjectIDs); err != nil {
			return nil, fmt.Errorf("failed to decode subject ids for %s: %w", stat.Date, err)
		}
		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily stats: %w", err)
	}

	return stats, nil
}
