package repositories

import (
	"errors"

	"todolist/internal/models"
)

// ErrListNotFound is returned when no list visible to the caller matches the id.
var ErrListNotFound = errors.New("list not found")

// ListRepository defines the interface for list data access. Visibility is
// determined by the list_memberships join table.
type ListRepository interface {
	GetAllForUser(userID uint) ([]models.List, error)
	CreateForUser(userID uint, list *models.List) error
	Rename(id, userID uint, name string) (*models.List, error)
	Delete(id, userID uint) error
}
