package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/edupanel/center-service/internal/api/http"
	"github.com/edupanel/center-service/internal/api/http/handlers"
	"github.com/edupanel/center-service/internal/auth"
	"github.com/edupanel/center-service/internal/config"
	"github.com/edupanel/center-service/internal/events"
	"github.com/edupanel/center-service/internal/observability"
	"github.com/edupanel/center-service/internal/persistence"
	"github.com/edupanel/center-service/internal/repository"
	"github.com/edupanel/center-service/internal/service"
	"github.com/edupanel/center-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	employeeRepo := repository.NewEmployeeRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	groupRepo := repository.NewGroupRepository(pool)
	invoiceRepo := repository.NewInvoiceRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	salaryRepo := repository.NewSalaryRepository(pool)
	refreshTokenRepo := repository.NewRefreshTokenRepository(redis.Client)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService, logger)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		EmployeeRepo:     employeeRepo,
		RefreshTokenRepo: refreshTokenRepo,
	})
	employeeService := service.NewEmployeeService(*cfg, employeeRepo, dispatcher)
	studentService := service.NewStudentService(studentRepo, groupRepo)
	groupService := service.NewGroupService(groupRepo, employeeRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo, groupRepo, studentRepo)
	reportService := service.NewReportService(*cfg, service.ReportDependencies{
		InvoiceRepo:  invoiceRepo,
		GroupRepo:    groupRepo,
		EmployeeRepo: employeeRepo,
		SalaryRepo:   salaryRepo,
		Dispatcher:   dispatcher,
	})

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), employeeRepo)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Employees:      handlers.NewEmployeesHandler(employeeService),
		Students:       handlers.NewStudentsHandler(studentService),
		Groups:         handlers.NewGroupsHandler(groupService),
		Invoices:       handlers.NewInvoicesHandler(invoiceService),
		Attendances:    handlers.NewAttendancesHandler(attendanceService),
		Reports:        handlers.NewReportsHandler(reportService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
