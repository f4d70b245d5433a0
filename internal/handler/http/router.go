package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/jornadahq/jornada-backend-go/internal/handler/http/middleware"
	"github.com/jornadahq/jornada-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	AllowedOrigins []string
	Environment    string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	companyHandler CompanyHandler,
	employeeHandler EmployeeHandler,
	timesheetHandler TimesheetHandler,
	vacationHandler VacationHandler,
	ticketHandler TicketHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "jornada-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Environment),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", authHandler.Me)

			r.Route("/company", func(r chi.Router) {
				r.Get("/", companyHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Put("/location", companyHandler.UpdateLocation)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", employeeHandler.Me)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
				})
			})

			r.Route("/timesheets", func(r chi.Router) {
				// Worker clock actions
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireWorker)
					r.Post("/start", timesheetHandler.Start)
					r.Post("/break/start", timesheetHandler.BreakStart)
					r.Post("/break/end", timesheetHandler.BreakEnd)
					r.Post("/end", timesheetHandler.End)
					r.Get("/state", timesheetHandler.SessionState)
					r.Get("/me", timesheetHandler.ListMine)
					r.Get("/overtime-summary/me", timesheetHandler.MyOvertimeSummary)
				})

				// Admin views
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/user/{userID}", timesheetHandler.ListByUser)
					r.Get("/overtime-summary", timesheetHandler.OvertimeSummary)
				})

				r.Route("/requests", func(r chi.Router) {
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireWorker)
						r.Post("/", timesheetHandler.CreateRequest)
						r.Get("/me", timesheetHandler.ListMyRequests)
					})

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireAdmin)
						r.Get("/pending", timesheetHandler.ListPendingRequests)
						r.Post("/{id}/approve", timesheetHandler.ApproveRequest)
						r.Post("/{id}/reject", timesheetHandler.RejectRequest)
					})
				})
			})

			r.Route("/vacations", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireWorker)
					r.Post("/", vacationHandler.CreateRequest)
					r.Get("/me", vacationHandler.ListMyRequests)
					r.Get("/balance", vacationHandler.MyBalance)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/pending", vacationHandler.ListPendingRequests)
					r.Post("/{id}/approve", vacationHandler.ApproveRequest)
					r.Post("/{id}/reject", vacationHandler.RejectRequest)
				})
			})

			r.Route("/tickets", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireWorker)
					r.Post("/", ticketHandler.Create)
					r.Get("/me", ticketHandler.ListMine)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/pending", ticketHandler.ListPending)
					r.Post("/{id}/approve", ticketHandler.Approve)
					r.Post("/{id}/reject", ticketHandler.Reject)
				})
			})
		})
	})
	return r
}
