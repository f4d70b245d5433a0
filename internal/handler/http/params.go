package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jornadahq/jornada-backend-go/internal/handler/http/response"
	"github.com/jornadahq/jornada-backend-go/internal/pkg/validator"
)

// pathUUID extracts a UUID path parameter and rejects malformed values
// with a 400 before they reach the store.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := chi.URLParam(r, name)
	if !validator.IsValidUUID(value) {
		response.BadRequest(w, "Invalid "+name+" parameter", nil)
		return "", false
	}
	return value, true
}
