package repositories

import (
	"errors"

	"todolist/internal/models"
)

// ErrUserNotFound is returned when no user row matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken is returned when creating a user whose email is already registered.
var ErrEmailTaken = errors.New("email already in use")

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
}
