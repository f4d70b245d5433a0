package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jornadahq/jornada-backend-go/internal/domain/vacation"
	"github.com/jornadahq/jornada-backend-go/internal/handler/http/response"
)

type VacationHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	ListMyRequests(w http.ResponseWriter, r *http.Request)
	MyBalance(w http.ResponseWriter, r *http.Request)
	ListPendingRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
}

type VacationHandlerImpl struct {
	vacationService vacation.VacationService
}

func NewVacationHandler(vacationService vacation.VacationService) VacationHandler {
	return &VacationHandlerImpl{vacationService: vacationService}
}

// CreateRequest implements VacationHandler.
func (h *VacationHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req vacation.CreateVacationRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.vacationService.CreateRequest(r.Context(), req)
	if err != nil {
		slog.Error("CreateRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Vacation request submitted", resp)
}

// ListMyRequests implements VacationHandler.
func (h *VacationHandlerImpl) ListMyRequests(w http.ResponseWriter, r *http.Request) {
	resp, err := h.vacationService.ListMyRequests(r.Context())
	if err != nil {
		slog.Error("ListMyRequests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// MyBalance implements VacationHandler.
func (h *VacationHandlerImpl) MyBalance(w http.ResponseWriter, r *http.Request) {
	resp, err := h.vacationService.MyBalance(r.Context())
	if err != nil {
		slog.Error("MyBalance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListPendingRequests implements VacationHandler.
func (h *VacationHandlerImpl) ListPendingRequests(w http.ResponseWriter, r *http.Request) {
	resp, err := h.vacationService.ListPendingRequests(r.Context())
	if err != nil {
		slog.Error("ListPendingRequests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ApproveRequest implements VacationHandler.
func (h *VacationHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.vacationService.ApproveRequest(r.Context(), id); err != nil {
		slog.Error("ApproveRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation request approved", nil)
}

// RejectRequest implements VacationHandler.
func (h *VacationHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	var req vacation.RejectVacationRequestRequest

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

	if err := h.vacationService.RejectRequest(r.Context(), req); err != nil {
		slog.Error("RejectRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation request rejected", nil)
}
