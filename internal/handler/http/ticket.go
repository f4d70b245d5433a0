package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jornadahq/jornada-backend-go/internal/domain/ticket"
	"github.com/jornadahq/jornada-backend-go/internal/handler/http/response"
)

type TicketHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type TicketHandlerImpl struct {
	ticketService ticket.TicketService
}

func NewTicketHandler(ticketService ticket.TicketService) TicketHandler {
	return &TicketHandlerImpl{ticketService: ticketService}
}

// Create implements TicketHandler.
func (h *TicketHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req ticket.CreateTicketRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create ticket decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.ticketService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create ticket service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Ticket submitted", resp)
}

// ListMine implements TicketHandler.
func (h *TicketHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	resp, err := h.ticketService.ListMine(r.Context())
	if err != nil {
		slog.Error("ListMine tickets service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListPending implements TicketHandler.
func (h *TicketHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	resp, err := h.ticketService.ListPending(r.Context())
	if err != nil {
		slog.Error("ListPending tickets service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Approve implements TicketHandler.
func (h *TicketHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.ticketService.Approve(r.Context(), id); err != nil {
		slog.Error("Approve ticket service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Ticket approved", nil)
}

// Reject implements TicketHandler.
func (h *TicketHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req ticket.RejectTicketRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Reject ticket decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	req.ID = id

	if err := h.ticketService.Reject(r.Context(), req); err != nil {
		slog.Error("Reject ticket service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Ticket rejected", nil)
}
