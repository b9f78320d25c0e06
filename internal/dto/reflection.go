package dto

import (
	"time"

	"github.com/mindlogapp/mindlog_backend/internal/models"
)

// SaveReflectionRequest defines the payload for the weekly reflection upsert.
// Both fields are optional free text.
type SaveReflectionRequest struct {
	BoundaryCheck *string `json:"boundaryCheck"`
	WeeklyGoal    *string `json:"weeklyGoal"`
}

// ReflectionResponse defines the data returned for a weekly reflection.
type ReflectionResponse struct {
	ReflectionID  string    `json:"reflectionID"`
	WeekStart     string    `json:"weekStart"`
	BoundaryCheck *string   `json:"boundaryCheck,omitempty"`
	WeeklyGoal    *string   `json:"weeklyGoal,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToReflectionResponse converts a models.WeeklyReflection to a ReflectionResponse DTO.
// WeekStart is rendered as a plain date since it identifies a calendar week.
func ToReflectionResponse(reflection *models.WeeklyReflection) ReflectionResponse {
	return ReflectionResponse{
		ReflectionID:  reflection.ReflectionID,
		WeekStart:     reflection.WeekStart.Format("2006-01-02"),
		BoundaryCheck: reflection.BoundaryCheck,
		WeeklyGoal:    reflection.WeeklyGoal,
		CreatedAt:     reflection.CreatedAt,
	}
}
