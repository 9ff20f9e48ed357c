package request

type RoleRequest struct {
	Name string `json:"nombreRol" validate:"required,max=60"`
}
