package models

import "time"

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on-hold"
	ProjectCompleted ProjectStatus = "completed"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPlanning, ProjectActive, ProjectOnHold, ProjectCompleted:
		return true
	}
	return false
}

type Project struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FirmID      string        `gorm:"size:36;not null;index" json:"firmId"`
	Name        string        `gorm:"size:255;not null" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	Status      ProjectStatus `gorm:"type:varchar(20);not null" json:"status"`

	// Client users allowed to see this project. Staff and admin see every
	// project in their firm.
	ClientIDs StringList `gorm:"serializer:json" json:"clientIds"`

	// Visible to staff/admin only; stripped for client responses.
	InternalNotes string `gorm:"type:text" json:"internalNotes,omitempty"`

	// Populated by the query layer, newest first.
	ActivityLog []ActivityLogEntry `gorm:"-" json:"activityLog"`
}

// StringList is stored as a JSON array column.
type StringList []string

func (l StringList) Contains(id string) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}
