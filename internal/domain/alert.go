package domain

import "time"

// AlertSeverity represents how urgent a burnout alert is.
type AlertSeverity string

const (
	AlertSeverityLow      AlertSeverity = "low"
	AlertSeverityMedium   AlertSeverity = "medium"
	AlertSeverityHigh     AlertSeverity = "high"
	AlertSeverityCritical AlertSeverity = "critical"
)

// BurnoutAlert notifies a team lead about an employee's mood pattern.
// At most one unacknowledged alert may exist per (employee, lead) within
// a trailing week; the service layer enforces this before insert.
type BurnoutAlert struct {
	ID             string
	EmployeeID     string
	TeamID         string
	LeadID         string
	Message        string
	Severity       AlertSeverity
	IsAcknowledged bool
	AcknowledgedAt *time.Time
	CreatedAt      time.Time
}
