package repositories

import (
	"fmt"
	"sort"
	"sync"

	"todolist/internal/models"
)

// MockTaskRepository is an in-memory implementation of TaskRepository.
type MockTaskRepository struct {
	tasks  map[uint]models.Task
	nextID uint
	mu     sync.RWMutex
}

// NewMockTaskRepository creates a new instance of MockTaskRepository.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		tasks:  make(map[uint]models.Task),
		nextID: 1,
	}
}

// GetAllByUser returns the user's tasks ordered by ascending id.
func (r *MockTaskRepository) GetAllByUser(userID uint) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	taskList := make([]models.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		if task.UserID == userID {
			taskList = append(taskList, task)
		}
	}
	sort.Slice(taskList, func(i, j int) bool { return taskList[i].ID < taskList[j].ID })
	return taskList, nil
}

// Create adds a new task, assigning the next id.
func (r *MockTaskRepository) Create(task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if task.ID == 0 {
		task.ID = r.nextID
		r.nextID++
	}
	r.tasks[task.ID] = *task
	return nil
}

// SetCompleted updates the completion flag of a task owned by the user.
func (r *MockTaskRepository) SetCompleted(id, userID uint, completed bool) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return nil, fmt.Errorf("task with ID %d: %w", id, ErrTaskNotFound)
	}
	task.Completed = completed
	r.tasks[id] = task
	return &task, nil
}

// Delete removes a task owned by the user.
func (r *MockTaskRepository) Delete(id, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return fmt.Errorf("task with ID %d: %w", id, ErrTaskNotFound)
	}
	delete(r.tasks, id)
	return nil
}
