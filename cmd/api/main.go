package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jornadahq/jornada-backend-go/internal/config"
	appHTTP "github.com/jornadahq/jornada-backend-go/internal/handler/http"
	"github.com/jornadahq/jornada-backend-go/internal/pkg/cron"
	"github.com/jornadahq/jornada-backend-go/internal/pkg/database"
	"github.com/jornadahq/jornada-backend-go/internal/pkg/jwt"
	"github.com/jornadahq/jornada-backend-go/internal/repository/postgresql"
	authService "github.com/jornadahq/jornada-backend-go/internal/service/auth"
	companyService "github.com/jornadahq/jornada-backend-go/internal/service/company"
	employeeService "github.com/jornadahq/jornada-backend-go/internal/service/employee"
	ticketService "github.com/jornadahq/jornada-backend-go/internal/service/ticket"
	timesheetService "github.com/jornadahq/jornada-backend-go/internal/service/timesheet"
	vacationService "github.com/jornadahq/jornada-backend-go/internal/service/vacation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	timesheetRequestRepo := postgresql.NewTimesheetRequestRepository(db)
	vacationRequestRepo := postgresql.NewVacationRequestRepository(db)
	ticketRepo := postgresql.NewTicketRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	companySvc := companyService.NewCompanyService(companyRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo)
	timesheetSvc := timesheetService.NewTimesheetService(db, timesheetRepo, timesheetRequestRepo, companyRepo, employeeRepo)
	vacationSvc := vacationService.NewVacationService(db, vacationRequestRepo, employeeRepo)
	ticketSvc := ticketService.NewTicketService(ticketRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	vacationHandler := appHTTP.NewVacationHandler(vacationSvc)
	ticketHandler := appHTTP.NewTicketHandler(ticketSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AllowedOrigins: cfg.App.AllowedOrigins,
			Environment:    cfg.App.Env,
		},
		jwtService,
		authHandler,
		companyHandler,
		employeeHandler,
		timesheetHandler,
		vacationHandler,
		ticketHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewVacationJobs(db).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:    port,
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
