package dto

// CreateTaskRequest represents the request body for POST /tasks.
type CreateTaskRequest struct {
	TeamID      string `json:"team_id"`
	AssigneeID  string `json:"assignee_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"due_date"` // YYYY-MM-DD
}

// CreateMoodCheckinRequest represents the request body for POST /moods.
type CreateMoodCheckinRequest struct {
	Mood  string `json:"mood"`
	Notes string `json:"notes,omitempty"`
}
