// @title			TeamPulse API
// @version		1.0
// @description	Team workload and well-being service with burnout scoring, mood trends and priority suggestions.
// @BasePath		/api/v1

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/teampulse/teampulse/internal/config"
	"github.com/teampulse/teampulse/internal/database"
	"github.com/teampulse/teampulse/internal/handler"
	"github.com/teampulse/teampulse/internal/logger"
	"github.com/teampulse/teampulse/internal/repository"
	"github.com/teampulse/teampulse/internal/service"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "teampulse",
		Usage: "Team workload and well-being service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:     "database-url",
				Aliases:  []string{"d"},
				Value:    config.DefaultDatabaseURL,
				Usage:    "PostgreSQL database URL",
				EnvVars:  []string{"DATABASE_URL"},
				Required: true,
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the web server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Value:   config.DefaultPort,
						Usage:   "HTTP server port",
						EnvVars: []string{"PORT"},
					},
				},
				Action: runServe,
			},
			{
				Name:   "check-burnout-alerts",
				Usage:  "Scan recent mood check-ins and alert team leads",
				Action: runCheckBurnoutAlerts,
			},
			{
				Name:   "suggest-priorities",
				Usage:  "Analyze active tasks and record priority suggestions",
				Action: runSuggestPriorities,
			},
			{
				Name:   "send-reminders",
				Usage:  "Log reminders for tasks due within 24 hours",
				Action: runSendReminders,
			},
		},
		Action: runServe,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func runServe(c *cli.Context) error {
	ctx := c.Context

	port := c.String("port")
	if port == "" {
		port = config.DefaultPort
	}

	db, err := connect(ctx, c)
	if err != nil {
		return err
	}
	defer db.Close()

	h := handler.New(db.Pool())

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	// CORS for the browser dashboard
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(mux)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           corsHandler,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "server_addr", "http://localhost:"+port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func runCheckBurnoutAlerts(c *cli.Context) error {
	ctx := c.Context

	db, err := connect(ctx, c)
	if err != nil {
		return err
	}
	defer db.Close()

	moodRepo := repository.NewMoodRepository(db.Pool())
	alertRepo := repository.NewAlertRepository(db.Pool())
	employeeRepo := repository.NewEmployeeRepository(db.Pool())

	alertService := service.NewAlertService(moodRepo, alertRepo, employeeRepo)

	created, err := alertService.RunBurnoutSweep(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("burnout sweep failed: %w", err)
	}

	slog.Info("burnout alert check finished", "alerts_created", created)
	return nil
}

func runSuggestPriorities(c *cli.Context) error {
	ctx := c.Context

	db, err := connect(ctx, c)
	if err != nil {
		return err
	}
	defer db.Close()

	taskRepo := repository.NewTaskRepository(db.Pool())
	suggestionRepo := repository.NewSuggestionRepository(db.Pool())

	suggestionService := service.NewSuggestionService(taskRepo, suggestionRepo)

	created, err := suggestionService.RunPrioritySweep(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("priority sweep failed: %w", err)
	}

	slog.Info("priority suggestion run finished", "suggestions_created", created)
	return nil
}

func runSendReminders(c *cli.Context) error {
	ctx := c.Context

	db, err := connect(ctx, c)
	if err != nil {
		return err
	}
	defer db.Close()

	taskRepo := repository.NewTaskRepository(db.Pool())
	reminderService := service.NewReminderService(taskRepo)

	sent, err := reminderService.RunReminderSweep(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("reminder sweep failed: %w", err)
	}

	slog.Info("reminder run finished", "reminders", sent)
	return nil
}

// connect opens the database pool and applies pending migrations.
func connect(ctx context.Context, c *cli.Context) (*database.DB, error) {
	db, err := database.New(ctx, c.String("database-url"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(ctx, db.Pool()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
