package main

import (
	"fmt"
	"net/http"

	"github.com/workhive/workhive-backend-go/internal/config"
	appHTTP "github.com/workhive/workhive-backend-go/internal/handler/http"
	"github.com/workhive/workhive-backend-go/internal/pkg/cron"
	"github.com/workhive/workhive-backend-go/internal/pkg/database"
	"github.com/workhive/workhive-backend-go/internal/pkg/jwt"
	"github.com/workhive/workhive-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workhive/workhive-backend-go/internal/service/attendance"
	authService "github.com/workhive/workhive-backend-go/internal/service/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(
		cfg.DatabaseURL(),
		int32(cfg.Database.MaxConns),
		int32(cfg.Database.MinConns),
	)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	dayRecordRepo := postgresql.NewDayRecordRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authSvc := authService.NewAuthService(db, employeeRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(db, dayRecordRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	if cfg.Cron.Enabled {
		scheduler := cron.NewScheduler()
		cron.NewAttendanceJobs(dayRecordRepo, employeeRepo).RegisterJobs(scheduler)
		scheduler.Start()
		defer scheduler.Stop()
	}

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		attendanceHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
