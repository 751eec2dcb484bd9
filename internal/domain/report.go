package domain

import "time"

// ReportType categorizes persisted insight reports.
type ReportType string

const (
	ReportTypeWorkload     ReportType = "workload"
	ReportTypeBurnout      ReportType = "burnout"
	ReportTypeProductivity ReportType = "productivity"
)

// InsightReport is a persisted snapshot of a computed analysis for a team.
type InsightReport struct {
	ID                string
	TeamID            string
	GeneratedBy       string
	ReportType        ReportType
	Summary           string
	ProductivityScore float64
	CreatedAt         time.Time
}
