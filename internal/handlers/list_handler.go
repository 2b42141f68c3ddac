package handlers

import (
	"errors"
	"log"

	"todolist/internal/repositories"
	"todolist/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ListHandler handles HTTP requests for lists.
type ListHandler struct {
	service  *services.ListService
	validate *validator.Validate
}

// NewListHandler creates a new ListHandler.
func NewListHandler(service *services.ListService) *ListHandler {
	return &ListHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the list routes with the Fiber app. The router is
// expected to already carry the auth middleware.
func (h *ListHandler) RegisterRoutes(router fiber.Router) {
	listRoutes := router.Group("/list")
	listRoutes.Get("/", h.HandleGetLists)
	listRoutes.Post("/", h.HandleCreateList)
	listRoutes.Put("/:id", h.HandleRenameList)
	listRoutes.Delete("/:id", h.HandleDeleteList)
}

// HandleGetLists retrieves all lists visible to the caller.
func (h *ListHandler) HandleGetLists(c *fiber.Ctx) error {
	lists, err := h.service.GetListsForUser(currentUserID(c))
	if err != nil {
		log.Printf("Error getting lists: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve lists",
		})
	}
	return c.JSON(lists)
}

// ListRequest represents the request body for list creation and rename.
type ListRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// HandleCreateList creates a new list with the caller as its first member.
func (h *ListHandler) HandleCreateList(c *fiber.Ctx) error {
	var req ListRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create list request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Name is required",
			"errors":  validationMessages(err),
		})
	}

	list, err := h.service.CreateList(currentUserID(c), req.Name)
	if err != nil {
		log.Printf("Error creating list: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create list",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(list)
}

// HandleRenameList changes the name of a list visible to the caller. The id
// comes from the path, the new name from the body.
func (h *ListHandler) HandleRenameList(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid list id",
		})
	}

	var req ListRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing rename list request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Name is required",
			"errors":  validationMessages(err),
		})
	}

	list, err := h.service.RenameList(uint(id), currentUserID(c), req.Name)
	if err != nil {
		if errors.Is(err, repositories.ErrListNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "List not found",
			})
		}
		log.Printf("Error renaming list %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update list",
		})
	}
	return c.JSON(list)
}

// HandleDeleteList deletes a list visible to the caller.
func (h *ListHandler) HandleDeleteList(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid list id",
		})
	}

	if err := h.service.DeleteList(uint(id), currentUserID(c)); err != nil {
		if errors.Is(err, repositories.ErrListNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "List not found",
			})
		}
		log.Printf("Error deleting list %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete list",
		})
	}
	return c.JSON(fiber.Map{
		"message": "List deleted",
	})
}
