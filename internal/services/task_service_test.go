package services_test

import (
	"fmt"
	"testing"

	"todolist/internal/models"
	"todolist/internal/repositories"
	"todolist/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTaskRepository is a mock implementation of repositories.TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) GetAllByUser(userID uint) ([]models.Task, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *MockTaskRepository) Create(task *models.Task) error {
	args := m.Called(task)
	return args.Error(0)
}

func (m *MockTaskRepository) SetCompleted(id, userID uint, completed bool) (*models.Task, error) {
	args := m.Called(id, userID, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskRepository) Delete(id, userID uint) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

// MockTaskEventPublisher is a mock implementation of services.TaskEventPublisher
type MockTaskEventPublisher struct {
	mock.Mock
}

func (m *MockTaskEventPublisher) PublishTaskEvent(eventType string, payload map[string]interface{}) error {
	args := m.Called(eventType, payload)
	return args.Error(0)
}

func TestTaskService_GetTasksForUser(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	service := services.NewTaskService(mockRepo, nil)

	expectedTasks := []models.Task{
		{ID: 1, Title: "buy milk", UserID: 7},
		{ID: 2, Title: "walk the dog", Completed: true, UserID: 7},
	}

	mockRepo.On("GetAllByUser", uint(7)).Return(expectedTasks, nil).Once()

	tasks, err := service.GetTasksForUser(7)
	assert.NoError(t, err)
	assert.Equal(t, expectedTasks, tasks)
	mockRepo.AssertExpectations(t)
}

func TestTaskService_CreateTask(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	mockPublisher := new(MockTaskEventPublisher)
	service := services.NewTaskService(mockRepo, mockPublisher)

	mockRepo.On("Create", mock.AnythingOfType("*models.Task")).Run(func(args mock.Arguments) {
		created := args.Get(0).(*models.Task)
		created.ID = 1
	}).Return(nil).Once()
	mockPublisher.On("PublishTaskEvent", "task.created", mock.Anything).Return(nil).Once()

	task, err := service.CreateTask(7, "buy milk")
	assert.NoError(t, err)
	assert.Equal(t, "buy milk", task.Title)
	assert.False(t, task.Completed)
	assert.Equal(t, uint(7), task.UserID)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)

	// A failing publish must not fail the request
	mockRepo.On("Create", mock.AnythingOfType("*models.Task")).Return(nil).Once()
	mockPublisher.On("PublishTaskEvent", "task.created", mock.Anything).Return(fmt.Errorf("broker down")).Once()

	task, err = service.CreateTask(7, "walk the dog")
	assert.NoError(t, err)
	assert.NotNil(t, task)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestTaskService_CreateTaskWithoutPublisher(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	service := services.NewTaskService(mockRepo, nil)

	mockRepo.On("Create", mock.AnythingOfType("*models.Task")).Return(nil).Once()

	task, err := service.CreateTask(7, "buy milk")
	assert.NoError(t, err)
	assert.NotNil(t, task)
	mockRepo.AssertExpectations(t)
}

func TestTaskService_SetTaskCompleted(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	mockPublisher := new(MockTaskEventPublisher)
	service := services.NewTaskService(mockRepo, mockPublisher)

	completed := &models.Task{ID: 1, Title: "buy milk", Completed: true, UserID: 7}
	mockRepo.On("SetCompleted", uint(1), uint(7), true).Return(completed, nil).Once()
	mockPublisher.On("PublishTaskEvent", "task.completed", mock.Anything).Return(nil).Once()

	task, err := service.SetTaskCompleted(1, 7, true)
	assert.NoError(t, err)
	assert.True(t, task.Completed)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)

	// Clearing the flag publishes task.reopened
	reopened := &models.Task{ID: 1, Title: "buy milk", Completed: false, UserID: 7}
	mockRepo.On("SetCompleted", uint(1), uint(7), false).Return(reopened, nil).Once()
	mockPublisher.On("PublishTaskEvent", "task.reopened", mock.Anything).Return(nil).Once()

	task, err = service.SetTaskCompleted(1, 7, false)
	assert.NoError(t, err)
	assert.False(t, task.Completed)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)

	// Not found propagates and nothing is published
	mockRepo.On("SetCompleted", uint(99), uint(7), true).Return(nil, repositories.ErrTaskNotFound).Once()
	_, err = service.SetTaskCompleted(99, 7, true)
	assert.ErrorIs(t, err, repositories.ErrTaskNotFound)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestTaskService_DeleteTask(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	service := services.NewTaskService(mockRepo, nil)

	mockRepo.On("Delete", uint(1), uint(7)).Return(nil).Once()
	assert.NoError(t, service.DeleteTask(1, 7))

	mockRepo.On("Delete", uint(99), uint(7)).Return(repositories.ErrTaskNotFound).Once()
	assert.ErrorIs(t, service.DeleteTask(99, 7), repositories.ErrTaskNotFound)
	mockRepo.AssertExpectations(t)
}
