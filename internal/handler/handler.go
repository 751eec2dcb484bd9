package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/teampulse/teampulse/docs" // Import generated docs
	"github.com/teampulse/teampulse/internal/handler/dto"
	"github.com/teampulse/teampulse/internal/middleware"
	"github.com/teampulse/teampulse/internal/repository"
	"github.com/teampulse/teampulse/internal/service"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	pool              *pgxpool.Pool
	insightService    *service.InsightService
	alertService      *service.AlertService
	suggestionService *service.SuggestionService
	taskRepo          *repository.TaskRepository
	moodRepo          *repository.MoodRepository
	employeeRepo      *repository.EmployeeRepository
	alertRepo         *repository.AlertRepository
	suggestionRepo    *repository.SuggestionRepository
	reportRepo        *repository.ReportRepository
	teamRepo          *repository.TeamRepository
	authMiddleware    *middleware.AuthMiddleware
}

// New creates a new Handler instance with all dependencies.
func New(pool *pgxpool.Pool) *Handler {
	// Create repositories
	taskRepo := repository.NewTaskRepository(pool)
	moodRepo := repository.NewMoodRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)
	teamRepo := repository.NewTeamRepository(pool)
	alertRepo := repository.NewAlertRepository(pool)
	suggestionRepo := repository.NewSuggestionRepository(pool)
	reportRepo := repository.NewReportRepository(pool)

	// Create services
	insightService := service.NewInsightService(taskRepo, moodRepo, employeeRepo, teamRepo, reportRepo)
	alertService := service.NewAlertService(moodRepo, alertRepo, employeeRepo)
	suggestionService := service.NewSuggestionService(taskRepo, suggestionRepo)

	// Create middleware
	authMiddleware := middleware.NewAuthMiddleware(employeeRepo)

	return &Handler{
		pool:              pool,
		insightService:    insightService,
		alertService:      alertService,
		suggestionService: suggestionService,
		taskRepo:          taskRepo,
		moodRepo:          moodRepo,
		employeeRepo:      employeeRepo,
		alertRepo:         alertRepo,
		suggestionRepo:    suggestionRepo,
		reportRepo:        reportRepo,
		teamRepo:          teamRepo,
		authMiddleware:    authMiddleware,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	// Swagger UI
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler())

	// API v1 routes with authentication
	mux.Handle("GET /api/v1/tasks", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleListTasks)))
	mux.Handle("POST /api/v1/tasks", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleCreateTask)))
	mux.Handle("GET /api/v1/tasks/{id}/suggestion", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleTaskSuggestion)))
	mux.Handle("GET /api/v1/tasks/{id}/suggestions", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleListTaskSuggestions)))
	mux.Handle("POST /api/v1/suggestions/{id}/apply", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleApplySuggestion)))
	mux.Handle("POST /api/v1/moods", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleCreateMoodCheckin)))
	mux.Handle("GET /api/v1/employees/{id}/burnout", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleEmployeeBurnout)))
	mux.Handle("GET /api/v1/employees/{id}/trend", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleEmployeeTrend)))
	mux.Handle("GET /api/v1/employees/{id}/productivity", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleEmployeeProductivity)))
	mux.Handle("GET /api/v1/teams/{id}/productivity", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleTeamProductivity)))
	mux.Handle("GET /api/v1/teams/{id}/reports", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleListTeamReports)))
	mux.Handle("GET /api/v1/alerts", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleListAlerts)))
	mux.Handle("POST /api/v1/alerts/{id}/acknowledge", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleAcknowledgeAlert)))
}

// handleHealthz returns 200 OK if the database is reachable.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.pool.Ping(ctx); err != nil {
		slog.Error("database health check failed", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Ping checks if the database is reachable (used for testing).
func (h *Handler) Ping(ctx context.Context) error {
	return h.pool.Ping(ctx)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// respondDomainError maps a domain error and writes the response.
func respondDomainError(w http.ResponseWriter, err error) {
	status, code, message := dto.MapDomainError(err)
	respondError(w, status, code, message)
}

// extractPathID extracts and validates a UUID path parameter named "id".
// Returns (id, true) if valid, ("", false) if invalid (error already sent
// to client).
func extractPathID(w http.ResponseWriter, r *http.Request, field string) (string, bool) {
	id := r.PathValue("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", field+" is required")
		return "", false
	}

	if _, err := uuid.Parse(id); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", field+" must be a valid UUID")
		return "", false
	}

	return id, true
}
