package models

import "time"

// WeeklyReflection holds the single reflection a user keeps per calendar
// week. WeekStart is always the Monday on or before the day the reflection
// was saved; (user_id, week_start) is unique in the database.
type WeeklyReflection struct {
	ReflectionID  string    `json:"reflectionID" db:"reflection_id"`
	UserID        string    `json:"userID" db:"user_id"`
	WeekStart     time.Time `json:"weekStart" db:"week_start"`
	BoundaryCheck *string   `json:"boundaryCheck,omitempty" db:"boundary_check"`
	WeeklyGoal    *string   `json:"weeklyGoal,omitempty" db:"weekly_goal"`
	AuditFields
}
