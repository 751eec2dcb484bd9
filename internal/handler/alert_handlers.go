package handler

import (
	"net/http"

	"github.com/teampulse/teampulse/internal/handler/dto"
	"github.com/teampulse/teampulse/internal/middleware"
)

// handleListAlerts lists burnout alerts addressed to the authenticated
// lead.
// @Summary List burnout alerts
// @Description Returns burnout alerts addressed to the authenticated team lead, newest first.
// @Tags alerts
// @Produce json
// @Param unacknowledged query bool false "Only return unacknowledged alerts"
// @Success 200 {object} dto.AlertsListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /alerts [get]
func (h *Handler) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employee, err := middleware.GetEmployeeFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	unacknowledgedOnly := r.URL.Query().Get("unacknowledged") == "true"

	alerts, err := h.alertRepo.ListByLead(ctx, employee.ID, unacknowledgedOnly)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	items := make([]dto.AlertResponse, 0, len(alerts))
	for _, alert := range alerts {
		items = append(items, dto.ToAlertResponse(alert))
	}

	respondJSON(w, http.StatusOK, dto.AlertsListResponse{
		Alerts: items,
		Total:  len(items),
	})
}

// handleAcknowledgeAlert acknowledges a burnout alert.
// @Summary Acknowledge a burnout alert
// @Description Marks an alert acknowledged. Only the lead the alert is addressed to may acknowledge it.
// @Tags alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} dto.AlertResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /alerts/{id}/acknowledge [post]
func (h *Handler) handleAcknowledgeAlert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employee, err := middleware.GetEmployeeFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	alertID, ok := extractPathID(w, r, "alert id")
	if !ok {
		return
	}

	if err := h.alertService.AcknowledgeAlert(ctx, alertID, employee.ID); err != nil {
		respondDomainError(w, err)
		return
	}

	alert, err := h.alertRepo.GetByID(ctx, alertID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToAlertResponse(*alert))
}
