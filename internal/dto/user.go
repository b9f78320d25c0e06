package dto

import (
	"time"

	"github.com/mindlogapp/mindlog_backend/internal/models"
)

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfileResponse wraps the user together with their journaling totals.
type ProfileResponse struct {
	User         UserResponse `json:"user"`
	TotalEntries int64        `json:"totalEntries"`
}

// ToUserResponse converts a models.User to a UserResponse DTO.
func ToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}
