package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jornadahq/jornada-backend-go/internal/domain/company"
	"github.com/jornadahq/jornada-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	UpdateLocation(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

// Get implements CompanyHandler.
func (h *CompanyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.companyService.Get(r.Context())
	if err != nil {
		slog.Error("Get company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdateLocation implements CompanyHandler.
func (h *CompanyHandlerImpl) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	var req company.UpdateLocationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateLocation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.companyService.UpdateLocation(r.Context(), req)
	if err != nil {
		slog.Error("UpdateLocation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company location updated", resp)
}
