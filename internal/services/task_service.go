package services

import (
	"log"

	"todolist/internal/models"
	"todolist/internal/repositories"
)

// TaskEventPublisher publishes task lifecycle events to a message broker.
type TaskEventPublisher interface {
	PublishTaskEvent(eventType string, payload map[string]interface{}) error
}

// TaskService handles business logic related to tasks.
type TaskService struct {
	repo      repositories.TaskRepository
	publisher TaskEventPublisher // optional, may be nil
}

// NewTaskService creates a new TaskService. The publisher may be nil, in
// which case event publication is skipped.
func NewTaskService(repo repositories.TaskRepository, publisher TaskEventPublisher) *TaskService {
	return &TaskService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetTasksForUser retrieves all tasks owned by the user, ordered by id.
func (s *TaskService) GetTasksForUser(userID uint) ([]models.Task, error) {
	return s.repo.GetAllByUser(userID)
}

// CreateTask creates a new task owned by the user and publishes a
// task.created event.
func (s *TaskService) CreateTask(userID uint, title string) (*models.Task, error) {
	task := &models.Task{
		Title:     title,
		Completed: false,
		UserID:    userID,
	}
	if err := s.repo.Create(task); err != nil {
		return nil, err
	}

	s.publish("task.created", task)
	return task, nil
}

// SetTaskCompleted sets the completion flag on a task owned by the user and
// publishes a task.completed or task.reopened event.
func (s *TaskService) SetTaskCompleted(id, userID uint, completed bool) (*models.Task, error) {
	task, err := s.repo.SetCompleted(id, userID, completed)
	if err != nil {
		return nil, err
	}

	event := "task.completed"
	if !completed {
		event = "task.reopened"
	}
	s.publish(event, task)
	return task, nil
}

// DeleteTask deletes a task owned by the user.
func (s *TaskService) DeleteTask(id, userID uint) error {
	return s.repo.Delete(id, userID)
}

// publish sends a task event when a publisher is configured. Publish failures
// are logged and never fail the request.
func (s *TaskService) publish(eventType string, task *models.Task) {
	if s.publisher == nil {
		return
	}
	payload := map[string]interface{}{
		"taskID":    task.ID,
		"userID":    task.UserID,
		"title":     task.Title,
		"completed": task.Completed,
	}
	if err := s.publisher.PublishTaskEvent(eventType, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event for task %d: %v", eventType, task.ID, err)
	}
}
