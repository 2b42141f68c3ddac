package repositories

import (
	"errors"

	"todolist/internal/models"
)

// ErrTaskNotFound is returned when no task owned by the caller matches the id.
// Another user's task id is indistinguishable from a missing one.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the interface for task data access. Every read and
// write is scoped to the owning user.
type TaskRepository interface {
	GetAllByUser(userID uint) ([]models.Task, error)
	Create(task *models.Task) error
	SetCompleted(id, userID uint, completed bool) (*models.Task, error)
	Delete(id, userID uint) error
}
