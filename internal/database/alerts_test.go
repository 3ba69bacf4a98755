package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *DB) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	return sqlDB, mock, New(sqlDB, zap.NewNop())
}

var day = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func TestClaimSuppression_FirstClaimWins(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	mock.ExpectExec(`INSERT INTO alert_suppressions`).
		WithArgs("frost", "2026-06-01").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO alert_suppressions`).
		WithArgs("frost", "2026-06-01").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := db.ClaimSuppression(context.Background(), "frost", day)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = db.ClaimSuppression(context.Background(), "frost", day)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSuppressionExists(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("heat", "2026-06-01").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := db.SuppressionExists(context.Background(), "heat", day)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSuppression_Error(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	mock.ExpectExec(`DELETE FROM alert_suppressions`).
		WithArgs("heat", "2026-06-01").
		WillReturnError(errors.New("connection reset"))

	err := db.DeleteSuppression(context.Background(), "heat", day)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete suppression")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertAlertLog_Transaction(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	log := &AlertLog{
		ID:         uuid.New().String(),
		AlertType:  "heavy_rain",
		AlertDay:   day,
		Title:      "Heavy Rain Alert",
		Message:    "Expected 25mm rainfall on Monday",
		Severity:   "warning",
		NotifiedAt: day.Add(6 * time.Hour),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO alert_suppressions`).
		WithArgs("heavy_rain", "2026-06-01").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO alert_history`).
		WithArgs(log.ID, "heavy_rain", "2026-06-01", log.Title, log.Message, "warning", "", "", log.NotifiedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM alert_history`).
		WithArgs(30).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, db.InsertAlertLog(context.Background(), log, 30))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertAlertLog_RollsBackOnFailure(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO alert_suppressions`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO alert_history`).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := db.InsertAlertLog(context.Background(), &AlertLog{ID: uuid.New().String(), AlertType: "frost", AlertDay: day}, 30)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert alert log")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListAlertLogs(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	newer := day.Add(2 * time.Hour)
	older := day.Add(time.Hour)
	rows := sqlmock.NewRows([]string{
		"id", "alert_type", "alert_day", "title", "message",
		"severity", "recommendation", "action", "notified_at",
	}).
		AddRow("id-2", "frost", day, "Frost Warning", "m2", "danger", "r2", "a2", newer).
		AddRow("id-1", "heat", day, "Heat Wave Alert", "m1", "danger", "r1", "a1", older)

	mock.ExpectQuery(`SELECT id, alert_type`).
		WithArgs(30).
		WillReturnRows(rows)

	logs, err := db.ListAlertLogs(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "id-2", logs[0].ID)
	assert.Equal(t, "frost", logs[0].AlertType)
	assert.Equal(t, newer, logs[0].NotifiedAt)
	assert.Equal(t, "heat", logs[1].AlertType)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClearAlertLogs_AlsoClearsSuppressions(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM alert_history`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM alert_suppressions`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, db.ClearAlertLogs(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDismissals(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	mock.ExpectExec(`INSERT INTO alert_dismissals`).
		WithArgs("strong_wind", "2026-06-01").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT alert_type FROM alert_dismissals`).
		WithArgs("2026-06-01").
		WillReturnRows(sqlmock.NewRows([]string{"alert_type"}).AddRow("strong_wind"))

	ctx := context.Background()
	require.NoError(t, db.InsertDismissal(ctx, "strong_wind", day))

	types, err := db.ListDismissals(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, []string{"strong_wind"}, types)

	require.NoError(t, mock.ExpectationsWereMet())
}
