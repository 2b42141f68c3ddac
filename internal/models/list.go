package models

import "gorm.io/gorm"

// List represents a named grouping of tasks. Users gain access to a list
// through a ListMembership row.
type List struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ListMembership links a user to a list. The row is created in the same
// transaction as the list itself.
type ListMembership struct {
	UserID uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	ListID uint `json:"list_id" gorm:"primaryKey;autoIncrement:false"`
}
