package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/handler/dto"
	"github.com/teampulse/teampulse/internal/middleware"
)

// handleCreateTask creates a new task.
// @Summary Create a new task
// @Description Creates a task assigned to a team member. Status starts as pending; priority defaults to medium.
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Task creation request"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks [post]
func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employee, err := middleware.GetEmployeeFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	var req dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.Title == "" || len(req.Title) > 200 {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "title must be between 1 and 200 characters")
		return
	}
	if req.TeamID == "" {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "team_id is required")
		return
	}
	if _, err := uuid.Parse(req.TeamID); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "team_id must be a valid UUID")
		return
	}
	if req.AssigneeID == "" {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "assignee_id is required")
		return
	}
	if _, err := uuid.Parse(req.AssigneeID); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "assignee_id must be a valid UUID")
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "due_date must be in YYYY-MM-DD format")
		return
	}

	priority := domain.TaskPriorityMedium
	if req.Priority != "" {
		priority = domain.TaskPriority(req.Priority)
		if !priority.IsValid() {
			respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "priority must be 'low', 'medium', or 'high'")
			return
		}
	}

	task, err := h.taskRepo.Create(ctx, &domain.Task{
		TeamID:      req.TeamID,
		AssigneeID:  req.AssigneeID,
		CreatorID:   employee.ID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		DueDate:     dueDate,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToTaskResponse(task))
}

// handleListTasks lists the authenticated employee's tasks.
// @Summary List my tasks
// @Description Returns every task assigned to the authenticated employee, newest first.
// @Tags tasks
// @Produce json
// @Success 200 {object} dto.TasksListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks [get]
func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employee, err := middleware.GetEmployeeFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	tasks, err := h.taskRepo.ListByAssignee(ctx, employee.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	items := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		items = append(items, dto.ToTaskResponse(&tasks[i]))
	}

	respondJSON(w, http.StatusOK, dto.TasksListResponse{
		Tasks: items,
		Total: len(items),
	})
}
