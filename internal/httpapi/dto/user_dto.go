package dto

import (
	"time"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
)

// UserResponse is the public shape of a user account.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	Role      string    `json:"role"`
	Confirmed bool      `json:"confirmed"`
	Banned    bool      `json:"banned"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse maps a domain user to its public shape.
func NewUserResponse(user *entities.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Avatar:    user.Avatar,
		Role:      string(user.Role),
		Confirmed: user.Confirmed,
		Banned:    user.Banned,
		CreatedAt: user.CreatedAt,
	}
}

// NewUserResponses maps a list of domain users.
func NewUserResponses(users []*entities.User) []*UserResponse {
	result := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, NewUserResponse(user))
	}
	return result
}

// UpdateNameRequest changes the display name.
type UpdateNameRequest struct {
	Username string `json:"username"`
}

// ChangeRoleRequest sets a user's role.
type ChangeRoleRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
