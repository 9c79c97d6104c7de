package handler

import (
	"net/http"
	"strconv"

	"github.com/DylanZhuo/GoodLand-W1/internal/service"
	customError "github.com/DylanZhuo/GoodLand-W1/pkg/errors"
	"github.com/DylanZhuo/GoodLand-W1/pkg/response"
)

type CashflowHandler struct {
	service *service.CashflowService
}

func NewCashflowHandler(service *service.CashflowService) *CashflowHandler {
	return &CashflowHandler{service: service}
}

// Forecast handles GET /api/v1/cashflow/forecast?months=N.
// The horizon defaults to the configured forecast length.
func (h *CashflowHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	horizonMonths := 0
	if raw := r.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.BadRequest(w, "months must be a positive integer", customError.WrapInvalidHorizon(raw))
			return
		}
		horizonMonths = parsed
	}

	report, err := h.service.Forecast(r.Context(), horizonMonths)
	if err != nil {
		response.InternalServerError(w, "Failed to generate forecast", err)
		return
	}

	response.Success(w, report)
}

// LoanBook handles GET /api/v1/loans/status.
func (h *CashflowHandler) LoanBook(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.LoanBook(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to classify loan book", err)
		return
	}

	response.Success(w, details)
}
