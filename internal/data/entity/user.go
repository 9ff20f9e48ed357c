package entity

type User struct {
	Base
	Name         string `gorm:"column:nombre;type:varchar(60);not null" json:"nombre"`
	Email        string `gorm:"column:email;type:varchar(30);not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"column:password;type:varchar(60);not null" json:"-"`
	Enabled      bool   `gorm:"column:estado;not null;default:true" json:"estado"`
	RoleID       *uint  `gorm:"column:rolId;index" json:"rolId"`

	Role *Role `gorm:"foreignKey:RoleID;constraint:OnDelete:SET NULL" json:"-"`
}

func (User) TableName() string {
	return "Usuarios"
}

// HasRole reports whether the user still points at a role. A role delete
// nulls the reference instead of removing the user.
func (u *User) HasRole() bool {
	return u.RoleID != nil
}
