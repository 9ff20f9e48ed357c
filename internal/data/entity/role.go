package entity

// Role is a named permission group. Users reference exactly one role.
type Role struct {
	Base
	Name    string `gorm:"column:nombreRol;type:varchar(60);not null;uniqueIndex" json:"nombreRol"`
	Enabled bool   `gorm:"column:estadoRol;not null;default:true" json:"estadoRol"`
}

func (Role) TableName() string {
	return "Roles"
}
