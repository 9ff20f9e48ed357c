package database

import (
	"fmt"

	"usuarios-api/internal/data/entity"

	"gorm.io/gorm"
)

// Migrate creates or updates the Roles and Usuarios tables. Roles goes first
// so the rolId foreign key has a target.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.Role{}, &entity.User{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
