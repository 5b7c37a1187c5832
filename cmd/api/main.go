package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hrms-labs/payroll-backend-go/internal/config"
	"github.com/hrms-labs/payroll-backend-go/internal/domain/payslip"
	appHTTP "github.com/hrms-labs/payroll-backend-go/internal/handler/http"
	"github.com/hrms-labs/payroll-backend-go/internal/pkg/cron"
	"github.com/hrms-labs/payroll-backend-go/internal/pkg/database"
	"github.com/hrms-labs/payroll-backend-go/internal/pkg/jwt"
	"github.com/hrms-labs/payroll-backend-go/internal/repository/postgresql"
	authService "github.com/hrms-labs/payroll-backend-go/internal/service/auth"
	bonusService "github.com/hrms-labs/payroll-backend-go/internal/service/bonus"
	payrollService "github.com/hrms-labs/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	bonusRepo := postgresql.NewBonusRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	policy := payslip.Policy{
		TaxRate:             cfg.Payroll.TaxRate,
		PFRate:              cfg.Payroll.PFRate,
		StandardWorkingDays: cfg.Payroll.StandardWorkingDays,
	}
	calculator := payrollService.NewCalculator(attendanceRepo, leaveRepo, bonusRepo, policy)

	txManager := postgresql.NewTxManager(db)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	payrollSvc := payrollService.NewPayrollService(txManager, employeeRepo, payslipRepo, calculator, cfg.Payroll.BatchWorkers)
	bonusSvc := bonusService.NewBonusService(bonusRepo, employeeRepo, payrollSvc)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	bonusHandler := appHTTP.NewBonusHandler(bonusSvc)

	router := appHTTP.NewRouter(cfg, jwtService, authHandler, payrollHandler, bonusHandler)

	scheduler := cron.NewScheduler()
	cron.NewPayrollJobs(payrollSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		slog.Info("Server running", "addr", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down")
	_ = server.Close()
}
