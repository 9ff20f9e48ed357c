package request

type RegisterRequest struct {
	Name     string `json:"nombre" validate:"required,max=60"`
	Email    string `json:"email" validate:"required,email,max=30"`
	Password string `json:"password" validate:"required,max=72"`
	RoleID   uint   `json:"rolId" validate:"required,gt=0"`
}

type UpdateUserRequest struct {
	Name   string `json:"nombre" validate:"required,max=60"`
	Email  string `json:"email" validate:"required,email,max=30"`
	RoleID uint   `json:"rolId" validate:"required,gt=0"`
}

type ResetPasswordRequest struct {
	OldPassword string `json:"passwordAnterior" validate:"required"`
	NewPassword string `json:"passwordNueva" validate:"required,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
