package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/worklog-hq/worklog-backend-go/internal/domain/income"
	"github.com/worklog-hq/worklog-backend-go/internal/handler/http/response"
)

type IncomeHandler interface {
	DistributeIncome(w http.ResponseWriter, r *http.Request)
	GetMyIncome(w http.ResponseWriter, r *http.Request)
}

type IncomeHandlerImpl struct {
	incomeService income.IncomeService
}

func NewIncomeHandler(incomeService income.IncomeService) IncomeHandler {
	return &IncomeHandlerImpl{
		incomeService: incomeService,
	}
}

// DistributeIncome implements IncomeHandler.
func (h *IncomeHandlerImpl) DistributeIncome(w http.ResponseWriter, r *http.Request) {
	var req income.DistributeIncomeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("DistributeIncome decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	result, err := h.incomeService.DistributeProjectIncome(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Income distributed", result)
}

// GetMyIncome implements IncomeHandler.
func (h *IncomeHandlerImpl) GetMyIncome(w http.ResponseWriter, r *http.Request) {
	filter := income.MyIncomeFilter{
		Month: r.URL.Query().Get("month"),
	}

	list, err := h.incomeService.GetMyIncome(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}
