package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/smukkama/crop-advisory/internal/alerting"
	"github.com/smukkama/crop-advisory/internal/database"
)

// PostgresStore keeps history in the alert_history table
type PostgresStore struct {
	db    *database.DB
	clock Clock
}

// NewPostgresStore creates a Postgres backed store. A nil clock uses RealClock.
func NewPostgresStore(db *database.DB, clock Clock) *PostgresStore {
	if clock == nil {
		clock = RealClock{}
	}
	return &PostgresStore{db: db, clock: clock}
}

func (ps *PostgresStore) ShouldNotify(ctx context.Context, alert alerting.WeatherAlert, day time.Time) (bool, error) {
	exists, err := ps.db.SuppressionExists(ctx, string(alert.Type), day)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

func (ps *PostgresStore) Record(ctx context.Context, alert alerting.WeatherAlert, day time.Time) error {
	return ps.db.InsertAlertLog(ctx, &database.AlertLog{
		ID:             uuid.NewString(),
		AlertType:      string(alert.Type),
		AlertDay:       day,
		Title:          alert.Title,
		Message:        alert.Message,
		Severity:       string(alert.Severity),
		Recommendation: alert.Recommendation,
		Action:         alert.Action,
		NotifiedAt:     ps.clock.Now(),
	}, Limit)
}

func (ps *PostgresStore) List(ctx context.Context) ([]Entry, error) {
	logs, err := ps.db.ListAlertLogs(ctx, Limit)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(logs))
	for _, l := range logs {
		entries = append(entries, newEntry(l.ID, alerting.WeatherAlert{
			Type:           alerting.AlertType(l.AlertType),
			Title:          l.Title,
			Message:        l.Message,
			Severity:       alerting.Severity(l.Severity),
			Recommendation: l.Recommendation,
			Action:         l.Action,
		}, l.AlertDay, l.NotifiedAt))
	}
	return entries, nil
}

func (ps *PostgresStore) Clear(ctx context.Context) error {
	return ps.db.ClearAlertLogs(ctx)
}

func (ps *PostgresStore) Claim(ctx context.Context, alertType alerting.AlertType, day time.Time) (bool, error) {
	return ps.db.ClaimSuppression(ctx, string(alertType), day)
}

func (ps *PostgresStore) Release(ctx context.Context, alertType alerting.AlertType, day time.Time) error {
	return ps.db.DeleteSuppression(ctx, string(alertType), day)
}

func (ps *PostgresStore) Dismiss(ctx context.Context, alertType alerting.AlertType, day time.Time) error {
	return ps.db.InsertDismissal(ctx, string(alertType), day)
}

func (ps *PostgresStore) Dismissed(ctx context.Context, day time.Time) (map[alerting.AlertType]bool, error) {
	types, err := ps.db.ListDismissals(ctx, day)
	if err != nil {
		return nil, err
	}

	dismissed := make(map[alerting.AlertType]bool, len(types))
	for _, t := range types {
		dismissed[alerting.AlertType(t)] = true
	}
	return dismissed, nil
}
