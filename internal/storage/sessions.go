package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/studyflow/studyflow/internal/common"
	"github.com/studyflow/studyflow/internal/model"
)

// FinalizeSession commits a completed session atomically: the session row,
// the owning subject's cumulative total, and the DailyStat for the session's
// local date are all written in one transaction. The insert is keyed on the
// session ID, so re-finalizing the same session is a no-op rather than a
// double count.
func (s *SQLiteStorage) FinalizeSession(ctx context.Context, sess *model.StudySession) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCompletedSession(sess); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO sessions (id, subject_id, start_time, end_time, duration_sec, total_paused_ms)
			VALUES (?, ?, ?, ?, ?, ?)`,
			sess.ID, sess.SubjectID, sess.StartTime, *sess.EndTime, sess.DurationSec, sess.TotalPausedMS,
		)
		if err != nil {
			return fmt.Errorf("failed to insert session %s: %w", sess.ID, err)
		}

		inserted, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check session insert: %w", err)
		}
		if inserted == 0 {
			slog.Warn("session already finalized, skipping aggregates", "session_id", sess.ID)
			return nil
		}

		result, err = tx.ExecContext(ctx, `
			UPDATE subjects SET total_study_sec = total_study_sec + ? WHERE id = ?`,
			sess.DurationSec, sess.SubjectID,
		)
		if err != nil {
			return fmt.Errorf("failed to update subject total: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check subject update: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("subject %s: %w", sess.SubjectID, common.ErrNotFound)
		}

		return recordDailyStudyTx(ctx, tx, sess.DateKey(), sess.SubjectID, sess.DurationSec)
	})
}

// recordDailyStudyTx additively updates the DailyStat row for a date: study
// time and session count increase, and the subject joins the studied set if
// absent. One row per date.
func recordDailyStudyTx(ctx context.Context, tx *sql.Tx, date, subjectID string, durationSec int64) error {
	var stat model.DailyStat
	var subjectIDsJSON string
	err := tx.QueryRowContext(ctx, `
		SELECT date, total_study_sec, sessions_count, subject_ids
		FROM daily_stats WHERE date = ?`, date,
	).Scan(&stat.Date, &stat.TotalStudySec, &stat.SessionsCount, &subjectIDsJSON)

	switch {
	case err == sql.ErrNoRows:
		subjectIDs, marshalErr := json.Marshal([]string{subjectID})
		if marshalErr != nil {
			return fmt.Errorf("failed to encode subject ids: %w", marshalErr)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO daily_stats (date, total_study_sec, sessions_count, subject_ids)
			VALUES (?, ?, 1, ?)`,
			date, durationSec, string(subjectIDs),
		)
		if err != nil {
			return fmt.Errorf("failed to insert daily stat for %s: %w", date, err)
		}
		return nil

	case err != nil:
		return fmt.Errorf("failed to query daily stat for %s: %w", date, err)
	}

	if err := json.Unmarshal([]byte(subjectIDsJSON), &stat.SubjectIDs); err != nil {
		return fmt.Errorf("failed to decode subject ids for %s: %w", date, err)
	}
	if !stat.HasSubject(subjectID) {
		stat.SubjectIDs = append(stat.SubjectIDs, subjectID)
	}

	subjectIDs, err := json.Marshal(stat.SubjectIDs)
	if err != nil {
		return fmt.Errorf("failed to encode subject ids: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE daily_stats
		SET total_study_sec = total_study_sec + ?,
		    sessions_count = sessions_count + 1,
		    subject_ids = ?
		WHERE date = ?`,
		durationSec, string(subjectIDs), date,
	)
	if err != nil {
		return fmt.Errorf("failed to update daily stat for %s: %w", date, err)
	}
	return nil
}

// ListCompletedSessions returns all finalized sessions, oldest first.
func (s *SQLiteStorage) ListCompletedSessions(ctx context.Context) ([]model.StudySession, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.querySessions(ctx, `
		SELECT id, subject_id, start_time, end_time, duration_sec, total_paused_ms
		FROM sessions ORDER BY start_time ASC`)
}

// ListSessionsBySubject returns a subject's finalized sessions, oldest first.
func (s *SQLiteStorage) ListSessionsBySubject(ctx context.Context, subjectID string) ([]model.StudySession, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(subjectID, "subjectID"); err != nil {
		return nil, err
	}
	return s.querySessions(ctx, `
		SELECT id, subject_id, start_time, end_time, duration_sec, total_paused_ms
		FROM sessions WHERE subject_id = ? ORDER BY start_time ASC`, subjectID)
}

func (s *SQLiteStorage) querySessions(ctx context.Context, query string, args ...any) ([]model.StudySession, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sessions []model.StudySession
	for rows.Next() {
		var sess model.StudySession
		var end sql.NullTime
		if err := rows.Scan(&sess.ID, &sess.SubjectID, &sess.StartTime, &end,
			&sess.DurationSec, &sess.TotalPausedMS); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		if end.Valid {
			endTime := end.Time
			sess.EndTime = &endTime
		}
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sessions: %w", err)
	}

	return sessions, nil
}

// CountCompletedSessions returns the number of finalized sessions.
func (s *SQLiteStorage) CountCompletedSessions(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return count, nil
}
