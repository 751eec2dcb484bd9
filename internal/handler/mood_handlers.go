package handler

import (
	"encoding/json"
	"net/http"

	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/handler/dto"
	"github.com/teampulse/teampulse/internal/middleware"
)

// handleCreateMoodCheckin records a mood check-in for the authenticated
// employee.
// @Summary Record a mood check-in
// @Description Appends a mood check-in for the authenticated employee. Check-ins are immutable once recorded.
// @Tags moods
// @Accept json
// @Produce json
// @Param request body dto.CreateMoodCheckinRequest true "Mood check-in request"
// @Success 201 {object} dto.MoodCheckinResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /moods [post]
func (h *Handler) handleCreateMoodCheckin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employee, err := middleware.GetEmployeeFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	var req dto.CreateMoodCheckinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	mood := domain.Mood(req.Mood)
	if !mood.IsValid() {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "mood must be 'happy', 'neutral', 'stressed', or 'burnout'")
		return
	}
	if !employee.HasTeam() {
		respondDomainError(w, domain.ErrEmployeeNoTeam)
		return
	}

	checkin, err := h.moodRepo.Create(ctx, &domain.MoodCheckin{
		EmployeeID: employee.ID,
		TeamID:     *employee.TeamID,
		Mood:       mood,
		Notes:      req.Notes,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.MoodCheckinResponse{
		ID:         checkin.ID,
		EmployeeID: checkin.EmployeeID,
		Mood:       string(checkin.Mood),
		Notes:      checkin.Notes,
		Timestamp:  checkin.Timestamp,
	})
}
