package domain

import "errors"

// Domain-specific errors for business logic validation.
var (
	// Task errors
	ErrTaskNotFound = errors.New("task not found")

	// Employee errors
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeInactive = errors.New("employee is inactive")
	ErrEmployeeNoTeam   = errors.New("employee has no team")
	ErrInvalidToken     = errors.New("invalid authentication token")

	// Team errors
	ErrTeamNotFound = errors.New("team not found")

	// Alert errors
	ErrAlertNotFound     = errors.New("alert not found")
	ErrNotAlertOwner     = errors.New("alert belongs to another lead")
	ErrAlertAcknowledged = errors.New("alert already acknowledged")

	// Suggestion errors
	ErrSuggestionNotFound   = errors.New("suggestion not found")
	ErrNotSuggestionManager = errors.New("no permission to modify this task")

	// Validation errors
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidPriority = errors.New("invalid task priority")
	ErrInvalidMood     = errors.New("invalid mood value")
)
