package repositories

import (
	"errors"
	"fmt"

	"todolist/internal/models"

	"gorm.io/gorm"
)

// GORMTaskRepository is a GORM implementation of TaskRepository.
type GORMTaskRepository struct {
	db *gorm.DB
}

// NewGORMTaskRepository creates a new instance of GORMTaskRepository.
func NewGORMTaskRepository(db *gorm.DB) *GORMTaskRepository {
	return &GORMTaskRepository{
		db: db,
	}
}

// GetAllByUser retrieves all tasks owned by the user, ordered by ascending id.
func (r *GORMTaskRepository) GetAllByUser(userID uint) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := r.db.Where("user_id = ?", userID).Order("id asc").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to get tasks for user %d: %w", userID, err)
	}
	return tasks, nil
}

// Create creates a new task in the database.
func (r *GORMTaskRepository) Create(task *models.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// SetCompleted updates the completion flag of a task owned by the user and
// returns the updated row. The owner filter is part of the WHERE clause, so a
// task belonging to someone else reads as not found.
func (r *GORMTaskRepository) SetCompleted(id, userID uint, completed bool) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("task with ID %d: %w", id, ErrTaskNotFound)
		}
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}

	// Update with a column expression so a false value is not skipped as a
	// zero value.
	if err := r.db.Model(&task).Update("completed", completed).Error; err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", id, err)
	}
	task.Completed = completed
	return &task, nil
}

// Delete deletes a task owned by the user.
func (r *GORMTaskRepository) Delete(id, userID uint) error {
	res := r.db.Delete(&models.Task{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("task with ID %d: %w", id, ErrTaskNotFound)
	}
	return nil
}
