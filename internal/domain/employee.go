package domain

import "time"

// Employee represents a team member who is assigned tasks and checks in moods.
type Employee struct {
	ID         string
	TeamID     *string
	Name       string
	Token      string
	IsLead     bool
	IsActive   bool
	Department string
	JobTitle   string
	CreatedAt  time.Time
}

// HasTeam reports whether the employee belongs to a team.
func (e *Employee) HasTeam() bool {
	return e.TeamID != nil
}

// Team groups employees and their tasks.
type Team struct {
	ID        string
	Name      string
	JoinCode  string
	CreatedAt time.Time
}
