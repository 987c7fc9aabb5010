package http

import (
	"net/http"

	"github.com/worklog-hq/worklog-backend-go/internal/domain/report"
	"github.com/worklog-hq/worklog-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetMonthlyWorkHours(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
	}
}

// GetMonthlyWorkHours implements ReportHandler.
func (h *ReportHandlerImpl) GetMonthlyWorkHours(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyWorkHoursRequest{
		StaffID: r.URL.Query().Get("staff_id"),
		Month:   r.URL.Query().Get("month"),
	}

	result, err := h.reportService.GetMonthlyWorkHours(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
