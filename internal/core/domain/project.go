package domain

import (
	"errors"
	"time"
)

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	StatusActive    ProjectStatus = "active"
	StatusCompleted ProjectStatus = "completed"
	StatusOnHold    ProjectStatus = "on-hold"
)

var ErrProjectNotFound = errors.New("project not found")

// Valid reports whether s is one of the known project statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

// Project is a managed project record.
type Project struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	Status      ProjectStatus `json:"status" bson:"status"`
	Manager     string        `json:"manager" bson:"manager"`
	Budget      float64       `json:"budget,omitempty" bson:"budget,omitempty"`
	StartDate   string        `json:"startDate" bson:"start_date"`
	EndDate     string        `json:"endDate,omitempty" bson:"end_date,omitempty"`
	Team        []string      `json:"team,omitempty" bson:"team,omitempty"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}
