// Package history keeps the capped log of alerts that were actually notified
// and the per-day suppression keys that stop a type from notifying twice on
// the same calendar day.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/smukkama/crop-advisory/internal/alerting"
	"github.com/smukkama/crop-advisory/internal/thresholds"
)

// DayLayout formats the calendar day part of a suppression key
const DayLayout = "2006-01-02"

// Limit is the maximum number of entries kept in the log
const Limit = thresholds.AlertHistoryLimit

// ErrUnknownBackend is returned by Open for an unsupported backend name
var ErrUnknownBackend = errors.New("unknown history backend")

// Entry is a notified alert with its log identity. Timestamp on the embedded
// alert is always set.
type Entry struct {
	ID  string `json:"id"`
	Day string `json:"day"`
	alerting.WeatherAlert
}

// Store is the alert history and suppression contract
type Store interface {
	// ShouldNotify reports whether no alert of this type was recorded on day
	ShouldNotify(ctx context.Context, alert alerting.WeatherAlert, day time.Time) (bool, error)
	// Record prepends a timestamped copy to the log and marks the suppression key
	Record(ctx context.Context, alert alerting.WeatherAlert, day time.Time) error
	// List returns the log, newest first
	List(ctx context.Context) ([]Entry, error)
	// Clear empties the log and every suppression key
	Clear(ctx context.Context) error
}

// Claimer is implemented by stores that can atomically take a suppression
// key. NotifyOnce prefers it over ShouldNotify followed by Record.
type Claimer interface {
	Claim(ctx context.Context, alertType alerting.AlertType, day time.Time) (bool, error)
	Release(ctx context.Context, alertType alerting.AlertType, day time.Time) error
}

// Dismissals tracks banner alerts the user hid for one calendar day
type Dismissals interface {
	Dismiss(ctx context.Context, alertType alerting.AlertType, day time.Time) error
	Dismissed(ctx context.Context, day time.Time) (map[alerting.AlertType]bool, error)
}

// Clock supplies the record timestamp
type Clock interface {
	Now() time.Time
}

// RealClock returns the system time in UTC
type RealClock struct{}

// Now returns the current time in UTC.
func (RealClock) Now() time.Time { return time.Now().UTC() }

// SuppressionKey renders the (type, calendar day) key
func SuppressionKey(alertType alerting.AlertType, day time.Time) string {
	return fmt.Sprintf("%s:%s", alertType, day.Format(DayLayout))
}

// NotifyOnce delivers alert unless its type was already notified on day.
// The key is taken before delivery and given back if delivery fails, so two
// concurrent callers never both deliver. It reports whether deliver ran
// successfully.
func NotifyOnce(
	ctx context.Context,
	store Store,
	alert alerting.WeatherAlert,
	day time.Time,
	deliver func(context.Context, alerting.WeatherAlert) error,
) (bool, error) {
	claimer, ok := store.(Claimer)
	if !ok {
		notify, err := store.ShouldNotify(ctx, alert, day)
		if err != nil || !notify {
			return false, err
		}
		if err := deliver(ctx, alert); err != nil {
			return false, fmt.Errorf("failed to deliver %s alert: %w", alert.Type, err)
		}
		return true, store.Record(ctx, alert, day)
	}

	claimed, err := claimer.Claim(ctx, alert.Type, day)
	if err != nil || !claimed {
		return false, err
	}

	if err := deliver(ctx, alert); err != nil {
		if relErr := claimer.Release(ctx, alert.Type, day); relErr != nil {
			err = errors.Join(err, relErr)
		}
		return false, fmt.Errorf("failed to deliver %s alert: %w", alert.Type, err)
	}

	if err := store.Record(ctx, alert, day); err != nil {
		return true, fmt.Errorf("alert delivered but not recorded: %w", err)
	}
	return true, nil
}

// Visible removes alerts whose type was dismissed
func Visible(alerts []alerting.WeatherAlert, dismissed map[alerting.AlertType]bool) []alerting.WeatherAlert {
	if len(dismissed) == 0 {
		return alerts
	}
	return alerting.Filter(alerts, func(a alerting.WeatherAlert) bool {
		return !dismissed[a.Type]
	})
}

func newEntry(id string, alert alerting.WeatherAlert, day, now time.Time) Entry {
	ts := now
	alert.Timestamp = &ts
	return Entry{
		ID:           id,
		Day:          day.Format(DayLayout),
		WeatherAlert: alert,
	}
}
