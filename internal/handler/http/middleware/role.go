package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/jornadahq/jornada-backend-go/internal/domain/user"
	"github.com/jornadahq/jornada-backend-go/internal/handler/http/response"
)

// RequireAdmin requires the ADMIN role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireWorker requires the WORKER role
func RequireWorker(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrWorkerAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleWorker) {
			response.HandleError(w, user.ErrWorkerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
