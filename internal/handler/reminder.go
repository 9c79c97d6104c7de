package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/DylanZhuo/GoodLand-W1/internal/service"
	customError "github.com/DylanZhuo/GoodLand-W1/pkg/errors"
	"github.com/DylanZhuo/GoodLand-W1/pkg/response"
	"github.com/DylanZhuo/GoodLand-W1/pkg/utils"
)

type ReminderHandler struct {
	service   *service.ReminderService
	validator *validator.Validate
}

func NewReminderHandler(service *service.ReminderService) *ReminderHandler {
	return &ReminderHandler{
		service:   service,
		validator: validator.New(),
	}
}

// MarkReminderRequest is the human action that flags a scheduled
// payout as paid or ignored.
type MarkReminderRequest struct {
	InvestorID    int64  `json:"investor_id" validate:"required,gt=0"`
	ScheduledDate string `json:"scheduled_date" validate:"required"`
	Action        string `json:"action" validate:"required,oneof=paid ignored"`
}

// Upcoming handles GET /api/v1/reminders?days=N.
func (h *ReminderHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	horizonDays := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.BadRequest(w, "days must be a positive integer", customError.WrapInvalidHorizon(raw))
			return
		}
		horizonDays = parsed
	}

	reminders, err := h.service.UpcomingPayouts(r.Context(), horizonDays)
	if err != nil {
		response.InternalServerError(w, "Failed to build reminder schedule", err)
		return
	}

	response.Success(w, reminders)
}

// Mark handles POST /api/v1/reminders/mark.
func (h *ReminderHandler) Mark(w http.ResponseWriter, r *http.Request) {
	var request MarkReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	scheduledDate, err := utils.ParseDate(request.ScheduledDate)
	if err != nil {
		response.BadRequest(w, "Invalid scheduled date", customError.WrapInvalidDate(request.ScheduledDate))
		return
	}

	switch request.Action {
	case "paid":
		err = h.service.MarkPaid(r.Context(), request.InvestorID, scheduledDate)
	case "ignored":
		err = h.service.MarkIgnored(r.Context(), request.InvestorID, scheduledDate)
	}
	if err != nil {
		response.InternalServerError(w, "Failed to update reminder flag", err)
		return
	}

	response.Success(w, map[string]string{"status": "updated"})
}
