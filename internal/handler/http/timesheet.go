package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/jornadahq/jornada-backend-go/internal/domain/timesheet"
	"github.com/jornadahq/jornada-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	Start(w http.ResponseWriter, r *http.Request)
	BreakStart(w http.ResponseWriter, r *http.Request)
	BreakEnd(w http.ResponseWriter, r *http.Request)
	End(w http.ResponseWriter, r *http.Request)
	SessionState(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListByUser(w http.ResponseWriter, r *http.Request)
	CreateRequest(w http.ResponseWriter, r *http.Request)
	ListMyRequests(w http.ResponseWriter, r *http.Request)
	ListPendingRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
	OvertimeSummary(w http.ResponseWriter, r *http.Request)
	MyOvertimeSummary(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

func decodeClockAction(w http.ResponseWriter, r *http.Request) (timesheet.ClockActionRequest, bool) {
	var req timesheet.ClockActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Clock action decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return timesheet.ClockActionRequest{}, false
	}
	return req, true
}

// Start implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Start(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeClockAction(w, r)
	if !ok {
		return
	}

	resp, err := h.timesheetService.Start(r.Context(), req)
	if err != nil {
		slog.Error("Start service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Session started", resp)
}

// BreakStart implements TimesheetHandler.
func (h *TimesheetHandlerImpl) BreakStart(w http.ResponseWriter, r *http.Request) {
	if err := h.timesheetService.BreakStart(r.Context()); err != nil {
		slog.Error("BreakStart service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break started", nil)
}

// BreakEnd implements TimesheetHandler.
func (h *TimesheetHandlerImpl) BreakEnd(w http.ResponseWriter, r *http.Request) {
	if err := h.timesheetService.BreakEnd(r.Context()); err != nil {
		slog.Error("BreakEnd service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break ended", nil)
}

// End implements TimesheetHandler.
func (h *TimesheetHandlerImpl) End(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeClockAction(w, r)
	if !ok {
		return
	}

	resp, err := h.timesheetService.End(r.Context(), req)
	if err != nil {
		slog.Error("End service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Session closed", resp)
}

// SessionState implements TimesheetHandler.
func (h *TimesheetHandlerImpl) SessionState(w http.ResponseWriter, r *http.Request) {
	resp, err := h.timesheetService.SessionState(r.Context())
	if err != nil {
		slog.Error("SessionState service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListMine implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	resp, err := h.timesheetService.ListMine(r.Context())
	if err != nil {
		slog.Error("ListMine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListByUser implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}

	resp, err := h.timesheetService.ListByUser(r.Context(), userID)
	if err != nil {
		slog.Error("ListByUser service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// CreateRequest implements TimesheetHandler.
func (h *TimesheetHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req timesheet.CreateTimesheetRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.timesheetService.CreateRequest(r.Context(), req)
	if err != nil {
		slog.Error("CreateRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule-change request submitted", resp)
}

// ListMyRequests implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ListMyRequests(w http.ResponseWriter, r *http.Request) {
	resp, err := h.timesheetService.ListMyRequests(r.Context())
	if err != nil {
		slog.Error("ListMyRequests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListPendingRequests implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ListPendingRequests(w http.ResponseWriter, r *http.Request) {
	resp, err := h.timesheetService.ListPendingRequests(r.Context())
	if err != nil {
		slog.Error("ListPendingRequests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ApproveRequest implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.timesheetService.ApproveRequest(r.Context(), id); err != nil {
		slog.Error("ApproveRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule-change request approved", nil)
}

// RejectRequest implements TimesheetHandler.
func (h *TimesheetHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	var req timesheet.RejectTimesheetRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RejectRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	req.ID = id

	if err := h.timesheetService.RejectRequest(r.Context(), req); err != nil {
		slog.Error("RejectRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule-change request rejected", nil)
}

// OvertimeSummary implements TimesheetHandler. An empty user_id query
// parameter yields the company-wide series.
func (h *TimesheetHandlerImpl) OvertimeSummary(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	resp, err := h.timesheetService.OvertimeSummary(r.Context(), userID)
	if err != nil {
		slog.Error("OvertimeSummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// MyOvertimeSummary implements TimesheetHandler.
func (h *TimesheetHandlerImpl) MyOvertimeSummary(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}
	userID, _ := claims["user_id"].(string)

	resp, err := h.timesheetService.OvertimeSummary(r.Context(), userID)
	if err != nil {
		slog.Error("MyOvertimeSummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
