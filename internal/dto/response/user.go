package response

import "usuarios-api/internal/data/entity"

// LoginResponse is the identity payload returned on a successful login
type LoginResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"nombre"`
	Email  string `json:"email"`
	RoleID *uint  `json:"rolId"`
}

type ProfileResponse struct {
	Email   string `json:"email"`
	Name    string `json:"nombre"`
	RoleID  *uint  `json:"rolId"`
	Enabled bool   `json:"estado"`
}

// Helper converters
func UserToLoginResponse(user *entity.User) LoginResponse {
	return LoginResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		RoleID: user.RoleID,
	}
}

func UserToProfileResponse(user *entity.User) ProfileResponse {
	return ProfileResponse{
		Email:   user.Email,
		Name:    user.Name,
		RoleID:  user.RoleID,
		Enabled: user.Enabled,
	}
}
