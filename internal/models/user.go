package models

import "gorm.io/gorm"

// User represents a registered user of the to-do service.
type User struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // bcrypt hash after registration
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
