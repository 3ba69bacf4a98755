package database

import (
	"context"
	"fmt"
	"time"
)

// ClaimSuppression inserts the (type, day) suppression row.
// It returns false when the row already existed.
func (db *DB) ClaimSuppression(ctx context.Context, alertType string, day time.Time) (bool, error) {
	query := `
		INSERT INTO alert_suppressions (alert_type, alert_day)
		VALUES ($1, $2)
		ON CONFLICT (alert_type, alert_day) DO NOTHING
	`

	result, err := db.ExecContext(ctx, query, alertType, day.Format(DayLayout))
	if err != nil {
		return false, fmt.Errorf("failed to claim suppression: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read claim result: %w", err)
	}
	return rows == 1, nil
}

// DeleteSuppression removes the (type, day) suppression row
func (db *DB) DeleteSuppression(ctx context.Context, alertType string, day time.Time) error {
	query := `DELETE FROM alert_suppressions WHERE alert_type = $1 AND alert_day = $2`

	if _, err := db.ExecContext(ctx, query, alertType, day.Format(DayLayout)); err != nil {
		return fmt.Errorf("failed to delete suppression: %w", err)
	}
	return nil
}

// SuppressionExists reports whether (type, day) was already notified
func (db *DB) SuppressionExists(ctx context.Context, alertType string, day time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM alert_suppressions
			WHERE alert_type = $1 AND alert_day = $2
		)
	`

	var exists bool
	if err := db.QueryRowContext(ctx, query, alertType, day.Format(DayLayout)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check suppression: %w", err)
	}
	return exists, nil
}

// InsertAlertLog records a notified alert, marks its suppression row and
// trims the log to the newest limit entries, all in one transaction.
func (db *DB) InsertAlertLog(ctx context.Context, log *AlertLog, limit int) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	day := log.AlertDay.Format(DayLayout)

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO alert_suppressions (alert_type, alert_day)
		VALUES ($1, $2)
		ON CONFLICT (alert_type, alert_day) DO NOTHING
	`, log.AlertType, day); err != nil {
		return fmt.Errorf("failed to mark suppression: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO alert_history (
			id, alert_type, alert_day, title, message,
			severity, recommendation, action, notified_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		log.ID,
		log.AlertType,
		day,
		log.Title,
		log.Message,
		log.Severity,
		log.Recommendation,
		log.Action,
		log.NotifiedAt,
	); err != nil {
		return fmt.Errorf("failed to insert alert log: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM alert_history
		WHERE id NOT IN (
			SELECT id FROM alert_history
			ORDER BY notified_at DESC
			LIMIT $1
		)
	`, limit); err != nil {
		return fmt.Errorf("failed to trim alert log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit alert log: %w", err)
	}
	return nil
}

// ListAlertLogs returns the newest alert logs first
func (db *DB) ListAlertLogs(ctx context.Context, limit int) ([]*AlertLog, error) {
	query := `
		SELECT id, alert_type, alert_day, title, message,
		       severity, recommendation, action, notified_at
		FROM alert_history
		ORDER BY notified_at DESC
		LIMIT $1
	`

	rows, err := db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query alert logs: %w", err)
	}
	defer rows.Close()

	var logs []*AlertLog
	for rows.Next() {
		var l AlertLog
		if err := rows.Scan(
			&l.ID,
			&l.AlertType,
			&l.AlertDay,
			&l.Title,
			&l.Message,
			&l.Severity,
			&l.Recommendation,
			&l.Action,
			&l.NotifiedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan alert log: %w", err)
		}
		logs = append(logs, &l)
	}

	return logs, rows.Err()
}

// ClearAlertLogs deletes the whole history together with the suppression
// rows, so previously notified types may notify again.
func (db *DB) ClearAlertLogs(ctx context.Context) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM alert_history`); err != nil {
		return fmt.Errorf("failed to clear alert logs: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM alert_suppressions`); err != nil {
		return fmt.Errorf("failed to clear suppressions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit clear: %w", err)
	}
	return nil
}

// InsertDismissal records that alertType was dismissed on day
func (db *DB) InsertDismissal(ctx context.Context, alertType string, day time.Time) error {
	query := `
		INSERT INTO alert_dismissals (alert_type, alert_day)
		VALUES ($1, $2)
		ON CONFLICT (alert_type, alert_day) DO NOTHING
	`

	if _, err := db.ExecContext(ctx, query, alertType, day.Format(DayLayout)); err != nil {
		return fmt.Errorf("failed to insert dismissal: %w", err)
	}
	return nil
}

// ListDismissals returns the alert types dismissed on day
func (db *DB) ListDismissals(ctx context.Context, day time.Time) ([]string, error) {
	query := `SELECT alert_type FROM alert_dismissals WHERE alert_day = $1 ORDER BY alert_type`

	rows, err := db.QueryContext(ctx, query, day.Format(DayLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query dismissals: %w", err)
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan dismissal: %w", err)
		}
		types = append(types, t)
	}

	return types, rows.Err()
}
