package scheduler

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"assetz/internal/service"
)

// Scheduler runs the daily preventive maintenance reminder scan.
type Scheduler struct {
	cron  *cron.Cron
	maint service.MaintenanceService
	loc   *time.Location
}

func New(maint service.MaintenanceService, loc *time.Location) *Scheduler {
	return &Scheduler{
		cron:  cron.New(cron.WithLocation(loc)),
		maint: maint,
		loc:   loc,
	}
}

// Start registers the reminder job and launches the cron loop. The scan also
// runs once at startup so reminders are not missed after a restart.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 8 * * *", s.scanDueSchedules); err != nil {
		return err
	}
	go s.scanDueSchedules()
	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) scanDueSchedules() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now().In(s.loc)
	due, err := s.maint.DueSchedules(ctx, now)
	if err != nil {
		s.logJSON(map[string]any{
			"component":     "scheduler",
			"event":         "maintenance_reminder_scan",
			"status":        "error",
			"error_message": err.Error(),
		})
		return
	}

	for i := range due {
		sch := &due[i]
		s.logJSON(map[string]any{
			"component":     "scheduler",
			"event":         "maintenance_due",
			"status":        "reminder",
			"schedule_id":   sch.ID,
			"asset_id":      sch.AssetID,
			"frequency":     sch.Frequency,
			"next_due_date": sch.NextDueDate.Format("2006-01-02"),
		})
	}

	s.logJSON(map[string]any{
		"component": "scheduler",
		"event":     "maintenance_reminder_scan",
		"status":    "success",
		"due_count": len(due),
	})
}

func (s *Scheduler) logJSON(fields map[string]any) {
	fields["timestamp"] = time.Now().In(s.loc).Format(time.RFC3339)
	_ = json.NewEncoder(os.Stdout).Encode(fields)
}
