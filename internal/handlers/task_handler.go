package handlers

import (
	"errors"
	"log"

	"todolist/internal/repositories"
	"todolist/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// TaskHandler handles HTTP requests for tasks.
type TaskHandler struct {
	service  *services.TaskService
	validate *validator.Validate
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the task routes with the Fiber app. The router is
// expected to already carry the auth middleware.
func (h *TaskHandler) RegisterRoutes(router fiber.Router) {
	taskRoutes := router.Group("/tasks")
	taskRoutes.Get("/", h.HandleGetTasks)
	taskRoutes.Post("/", h.HandleCreateTask)
	taskRoutes.Put("/:id", h.HandleUpdateTask)
	taskRoutes.Delete("/:id", h.HandleDeleteTask)
}

// currentUserID returns the authenticated user's id stored by the auth
// middleware.
func currentUserID(c *fiber.Ctx) uint {
	userID, _ := c.Locals("user_id").(uint)
	return userID
}

// HandleGetTasks retrieves all tasks owned by the caller.
func (h *TaskHandler) HandleGetTasks(c *fiber.Ctx) error {
	tasks, err := h.service.GetTasksForUser(currentUserID(c))
	if err != nil {
		log.Printf("Error getting tasks: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve tasks",
		})
	}
	return c.JSON(tasks)
}

// CreateTaskRequest represents the request body for task creation.
type CreateTaskRequest struct {
	Title string `json:"title" validate:"required,min=1,max=255"`
}

// HandleCreateTask creates a new task owned by the caller.
func (h *TaskHandler) HandleCreateTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create task request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Title is required",
			"errors":  validationMessages(err),
		})
	}

	task, err := h.service.CreateTask(currentUserID(c), req.Title)
	if err != nil {
		log.Printf("Error creating task: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create task",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

// UpdateTaskRequest represents the request body for task updates.
type UpdateTaskRequest struct {
	Completed bool `json:"completed"`
}

// HandleUpdateTask sets the completion flag of a task owned by the caller.
func (h *TaskHandler) HandleUpdateTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid task id",
		})
	}

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update task request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	task, err := h.service.SetTaskCompleted(uint(id), currentUserID(c), req.Completed)
	if err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Task not found",
			})
		}
		log.Printf("Error updating task %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update task",
		})
	}
	return c.JSON(task)
}

// HandleDeleteTask deletes a task owned by the caller.
func (h *TaskHandler) HandleDeleteTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid task id",
		})
	}

	if err := h.service.DeleteTask(uint(id), currentUserID(c)); err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Task not found",
			})
		}
		log.Printf("Error deleting task %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete task",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
