package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worklog-hq/worklog-backend-go/internal/domain/overtime"
	"github.com/worklog-hq/worklog-backend-go/internal/handler/http/response"
)

type OvertimeHandler interface {
	StartOvertime(w http.ResponseWriter, r *http.Request)
	EndOvertime(w http.ResponseWriter, r *http.Request)
	GetMyOvertime(w http.ResponseWriter, r *http.Request)
}

type OvertimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &OvertimeHandlerImpl{
		overtimeService: overtimeService,
	}
}

// StartOvertime implements OvertimeHandler.
func (h *OvertimeHandlerImpl) StartOvertime(w http.ResponseWriter, r *http.Request) {
	var req overtime.StartOvertimeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("StartOvertime decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	session, err := h.overtimeService.StartOvertime(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime started", session)
}

// EndOvertime implements OvertimeHandler.
func (h *OvertimeHandlerImpl) EndOvertime(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		response.BadRequest(w, "Session ID is required")
		return
	}

	req := overtime.EndOvertimeRequest{SessionID: sessionID}

	session, err := h.overtimeService.EndOvertime(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime ended", session)
}

// GetMyOvertime implements OvertimeHandler.
func (h *OvertimeHandlerImpl) GetMyOvertime(w http.ResponseWriter, r *http.Request) {
	filter := overtime.MyOvertimeFilter{
		Month: r.URL.Query().Get("month"),
	}

	list, err := h.overtimeService.GetMyOvertime(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}
