package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetz/internal/model"
)

func scheduleRows(s ...*model.MaintenanceSchedule) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "asset_id", "maintenance_type_id", "frequency", "interval_days",
		"start_date", "next_due_date", "last_completed_date", "assigned_to", "vendor_id",
		"estimated_cost", "is_active", "send_reminder", "reminder_days_before",
		"created_at", "updated_at",
	})
	for _, sch := range s {
		rows.AddRow(
			sch.ID, sch.AssetID, sch.MaintenanceTypeID, sch.Frequency, sch.IntervalDays,
			sch.StartDate, sch.NextDueDate, sch.LastCompletedDate, sch.AssignedTo, sch.VendorID,
			sch.EstimatedCost, sch.IsActive, sch.SendReminder, sch.ReminderDaysBefore,
			sch.CreatedAt, sch.UpdatedAt,
		)
	}
	return rows
}

func testSchedule(id string, nextDue time.Time) *model.MaintenanceSchedule {
	return &model.MaintenanceSchedule{
		ID:                 id,
		AssetID:            "asset-1",
		MaintenanceTypeID:  "type-1",
		Frequency:          model.FreqMonthly,
		StartDate:          nextDue.AddDate(0, -1, 0),
		NextDueDate:        nextDue,
		IsActive:           true,
		SendReminder:       true,
		ReminderDaysBefore: 7,
		CreatedAt:          nextDue.AddDate(0, -1, 0),
		UpdatedAt:          nextDue.AddDate(0, -1, 0),
	}
}

func TestMaintenancePostgres_DueSchedules(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMaintenancePostgres(db)
	ctx := context.Background()
	cutoff := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("filters on active, reminder and window in SQL", func(t *testing.T) {
		sch := testSchedule("sched-1", cutoff.AddDate(0, 0, 5))
		mock.ExpectQuery(`SELECT (.+) FROM maintenance_schedules\s+WHERE is_active AND send_reminder\s+AND next_due_date - \(reminder_days_before \* INTERVAL '1 day'\) <= \$1`).
			WithArgs(cutoff).
			WillReturnRows(scheduleRows(sch))

		due, err := repo.DueSchedules(ctx, cutoff)
		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, "sched-1", due[0].ID)
		assert.True(t, due[0].SendReminder)
	})

	t.Run("nothing due", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM maintenance_schedules").
			WithArgs(cutoff).
			WillReturnRows(scheduleRows())

		due, err := repo.DueSchedules(ctx, cutoff)
		require.NoError(t, err)
		assert.Empty(t, due)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM maintenance_schedules").
			WithArgs(cutoff).
			WillReturnError(errors.New("query failed"))

		due, err := repo.DueSchedules(ctx, cutoff)
		assert.Nil(t, due)
		assert.EqualError(t, err, "query failed")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaintenancePostgres_CreateSchedule(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMaintenancePostgres(db)
	ctx := context.Background()

	sch := testSchedule("sched-1", time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))
	mock.ExpectQuery("INSERT INTO maintenance_schedules").
		WithArgs(
			sch.ID, sch.AssetID, sch.MaintenanceTypeID, sch.Frequency, sch.IntervalDays,
			sch.StartDate, sch.NextDueDate, sch.AssignedTo, sch.VendorID, sch.EstimatedCost,
			sch.IsActive, sch.SendReminder, sch.ReminderDaysBefore, sch.CreatedAt,
		).
		WillReturnRows(scheduleRows(sch))

	got, err := repo.CreateSchedule(ctx, sch)
	require.NoError(t, err)
	assert.Equal(t, model.FreqMonthly, got.Frequency)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaintenancePostgres_UpdateSchedule(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMaintenancePostgres(db)
	ctx := context.Background()

	sch := testSchedule("sched-1", time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))
	sch.ReminderDaysBefore = 14
	mock.ExpectQuery("UPDATE maintenance_schedules").
		WithArgs(
			sch.ID, sch.Frequency, sch.IntervalDays, sch.NextDueDate, sch.LastCompletedDate,
			sch.AssignedTo, sch.VendorID, sch.EstimatedCost, sch.IsActive, sch.SendReminder,
			sch.ReminderDaysBefore,
		).
		WillReturnRows(scheduleRows(sch))

	got, err := repo.UpdateSchedule(ctx, sch)
	require.NoError(t, err)
	assert.Equal(t, 14, got.ReminderDaysBefore)
	assert.NoError(t, mock.ExpectationsWereMet())
}
