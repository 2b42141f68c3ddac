package services

import (
	"todolist/internal/models"
	"todolist/internal/repositories"
)

// ListService handles business logic related to lists.
type ListService struct {
	repo repositories.ListRepository
}

// NewListService creates a new ListService.
func NewListService(repo repositories.ListRepository) *ListService {
	return &ListService{
		repo: repo,
	}
}

// GetListsForUser retrieves all lists the user is a member of, ordered by id.
func (s *ListService) GetListsForUser(userID uint) ([]models.List, error) {
	return s.repo.GetAllForUser(userID)
}

// CreateList creates a new list and its membership row for the user.
func (s *ListService) CreateList(userID uint, name string) (*models.List, error) {
	list := &models.List{Name: name}
	if err := s.repo.CreateForUser(userID, list); err != nil {
		return nil, err
	}
	return list, nil
}

// RenameList changes the name of a list the user is a member of.
func (s *ListService) RenameList(id, userID uint, name string) (*models.List, error) {
	return s.repo.Rename(id, userID, name)
}

// DeleteList deletes a list the user is a member of.
func (s *ListService) DeleteList(id, userID uint) error {
	return s.repo.Delete(id, userID)
}
