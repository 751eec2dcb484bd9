package handler

import (
	"net/http"

	"github.com/teampulse/teampulse/internal/handler/dto"
	"github.com/teampulse/teampulse/internal/middleware"
)

// handleListTaskSuggestions lists recorded priority suggestions for a task.
// @Summary List a task's priority suggestions
// @Description Returns the recorded priority suggestions for a task, newest first.
// @Tags suggestions
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.SuggestionsListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/suggestions [get]
func (h *Handler) handleListTaskSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, ok := extractPathID(w, r, "task id")
	if !ok {
		return
	}

	if _, err := h.taskRepo.GetByID(ctx, taskID); err != nil {
		respondDomainError(w, err)
		return
	}

	suggestions, err := h.suggestionRepo.ListByTask(ctx, taskID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	items := make([]dto.PrioritySuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		items = append(items, dto.ToPrioritySuggestionResponse(s))
	}

	respondJSON(w, http.StatusOK, dto.SuggestionsListResponse{
		Suggestions: items,
		Total:       len(items),
	})
}

// handleApplySuggestion applies a recorded priority suggestion to its task.
// @Summary Apply a priority suggestion
// @Description Sets the task's priority to the suggested one and marks the suggestion applied. Only the task's assignee or a lead of the task's team may apply it.
// @Tags suggestions
// @Produce json
// @Param id path string true "Suggestion ID"
// @Success 200 {object} dto.PrioritySuggestionResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /suggestions/{id}/apply [post]
func (h *Handler) handleApplySuggestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employee, err := middleware.GetEmployeeFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	suggestionID, ok := extractPathID(w, r, "suggestion id")
	if !ok {
		return
	}

	suggestion, err := h.suggestionService.ApplySuggestion(ctx, suggestionID, employee)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToPrioritySuggestionResponse(*suggestion))
}
