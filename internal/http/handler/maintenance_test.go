package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"assetz/internal/model"
	"assetz/internal/service"
	serviceMocks "assetz/internal/service/mocks"
)

func TestUpdateMaintenanceSchedule(t *testing.T) {
	mockSvc := new(serviceMocks.MockMaintenanceService)
	app := fiber.New()
	app.Put("/maintenance/schedules/:id", UpdateMaintenanceSchedule(mockSvc))

	const (
		assetID = "a71a0b80-9e3f-4b2b-b5b0-6f1f1c2f9e11"
		typeID  = "9f9e6c2a-3a7d-4a64-a7de-2a2f57a6b001"
	)

	t.Run("success", func(t *testing.T) {
		mockSvc.On("UpdateSchedule", mock.Anything, mock.Anything, mock.Anything,
			mock.MatchedBy(func(sch *model.MaintenanceSchedule) bool {
				return sch.ID == "sched-1" && sch.Frequency == model.FreqQuarterly &&
					sch.ReminderDaysBefore == 14
			})).
			Return(&model.MaintenanceSchedule{ID: "sched-1", Frequency: model.FreqQuarterly}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/maintenance/schedules/sched-1", fiber.Map{
			"asset_id":             assetID,
			"maintenance_type_id":  typeID,
			"frequency":            model.FreqQuarterly,
			"start_date":           "2024-01-15",
			"reminder_days_before": 14,
		}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var updated model.MaintenanceSchedule
		json.NewDecoder(resp.Body).Decode(&updated)
		assert.Equal(t, "sched-1", updated.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown schedule", func(t *testing.T) {
		mockSvc.On("UpdateSchedule", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/maintenance/schedules/missing", fiber.Map{
			"asset_id":            assetID,
			"maintenance_type_id": typeID,
			"frequency":           model.FreqMonthly,
			"start_date":          "2024-01-15",
		}))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid frequency rejected", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPut, "/maintenance/schedules/sched-1", fiber.Map{
			"asset_id":            assetID,
			"maintenance_type_id": typeID,
			"frequency":           "SOMETIMES",
			"start_date":          "2024-01-15",
		}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	})
}
