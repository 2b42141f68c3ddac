package models

import "gorm.io/gorm"

// Task represents a single to-do item owned by exactly one user.
type Task struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Title      string `json:"title" gorm:"type:varchar(255)" validate:"required,min=1,max=255"`
	Completed  bool   `json:"completed" gorm:"default:false"`
	UserID     uint   `json:"user_id" gorm:"index;not null"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
