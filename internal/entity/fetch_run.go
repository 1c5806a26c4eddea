package entity

import (
	"database/sql"
	"time"

	"gorm.io/datatypes"
)

// Fetch run statuses.
const (
	FetchRunStatusRunning   = "RUNNING"
	FetchRunStatusCompleted = "COMPLETED"
	FetchRunStatusFailed    = "FAILED"
)

// FetchRun records one fetch-and-store pass over all tracked brokers, whether
// triggered by the schedule or on demand.
type FetchRun struct {
	ID           int64          `gorm:"primaryKey" json:"id"`
	Status       string         `gorm:"not null" json:"status"`
	TotalCreated int            `gorm:"default:0" json:"total_created"`
	TotalUpdated int            `gorm:"default:0" json:"total_updated"`
	Summary      datatypes.JSON `gorm:"type:jsonb" json:"summary"`
	StartedAt    time.Time      `json:"started_at"`
	CompletedAt  sql.NullTime   `json:"completed_at" swaggertype:"string" format:"date-time"`
	ErrorMessage sql.NullString `json:"error_message" swaggertype:"string"`
}

func (FetchRun) TableName() string {
	return "fetch_runs"
}
