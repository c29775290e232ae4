package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/agb-hr/attendance-backend-go/internal/config"
	appHTTP "github.com/agb-hr/attendance-backend-go/internal/handler/http"
	"github.com/agb-hr/attendance-backend-go/internal/pkg/database"
	"github.com/agb-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/agb-hr/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/agb-hr/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/agb-hr/attendance-backend-go/internal/service/auth"
	reportService "github.com/agb-hr/attendance-backend-go/internal/service/report"
	"github.com/go-chi/httplog/v3"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := parseLevel(cfg.App.LogLevel)
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "agb-attendance"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	punchRepo := postgresql.NewPunchRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	holidayRepo := postgresql.NewPublicHolidayRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	employeeLoginRepo := postgresql.NewEmployeeLoginRepository(db)
	transactor := postgresql.NewTransactor(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	rules := attendanceService.Rules{
		CutoffDay:         cfg.Attendance.CutoffDay,
		FullDayHours:      cfg.Attendance.FullDayHours,
		HalfLeaveMinHours: cfg.Attendance.HalfLeaveMinHours,
	}
	attendanceSvc := attendanceService.NewAttendanceService(
		punchRepo,
		leaveRequestRepo,
		holidayRepo,
		employeeRepo,
		rules,
		loc,
		time.Now,
	)
	authSvc := serviceAuth.NewAuthService(
		transactor,
		employeeLoginRepo,
		employeeRepo,
		JWTService,
		serviceAuth.Policy{MaxAttempts: cfg.Auth.MaxAttempts, BlockWindow: cfg.Auth.BlockWindow},
		time.Now,
	)
	reportSvc := reportService.NewReportService(attendanceSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         logger,
			LogLevel:       logLevel,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		JWTService,
		authSvc,
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc, loc.String()),
		appHTTP.NewReportHandler(reportSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server listening", "addr", server.Addr, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
