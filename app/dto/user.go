package dto

import "csvvault/app/models"

// User is the public shape of an account. The persisted record stays in
// app/models; the password hash never crosses this boundary.
type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

func UserFromModel(u *models.User) User {
	return User{ID: u.ID, Username: u.Username, Role: u.Role, IsActive: u.IsActive}
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type SetActiveRequest struct {
	IsActive bool `json:"is_active"`
}
