package repositories

import (
	"errors"
	"fmt"

	"todolist/internal/models"

	"gorm.io/gorm"
)

// GORMListRepository is a GORM implementation of ListRepository.
type GORMListRepository struct {
	db *gorm.DB
}

// NewGORMListRepository creates a new instance of GORMListRepository.
func NewGORMListRepository(db *gorm.DB) *GORMListRepository {
	return &GORMListRepository{
		db: db,
	}
}

// GetAllForUser retrieves all lists visible to the user through the
// membership join, ordered by ascending id.
func (r *GORMListRepository) GetAllForUser(userID uint) ([]models.List, error) {
	lists := make([]models.List, 0)
	err := r.db.
		Joins("JOIN list_memberships ON list_memberships.list_id = lists.id").
		Where("list_memberships.user_id = ?", userID).
		Order("lists.id asc").
		Find(&lists).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get lists for user %d: %w", userID, err)
	}
	return lists, nil
}

// CreateForUser inserts the list and its membership row in one transaction.
// Both rows exist afterwards or neither does.
func (r *GORMListRepository) CreateForUser(userID uint, list *models.List) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(list).Error; err != nil {
			return err
		}
		membership := models.ListMembership{UserID: userID, ListID: list.ID}
		return tx.Create(&membership).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create list for user %d: %w", userID, err)
	}
	return nil
}

// findForUser loads a list only if the user holds a membership for it.
func (r *GORMListRepository) findForUser(id, userID uint) (*models.List, error) {
	var list models.List
	err := r.db.
		Joins("JOIN list_memberships ON list_memberships.list_id = lists.id").
		Where("lists.id = ? AND list_memberships.user_id = ?", id, userID).
		First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("list with ID %d: %w", id, ErrListNotFound)
		}
		return nil, fmt.Errorf("failed to get list %d: %w", id, err)
	}
	return &list, nil
}

// Rename changes the name of a list visible to the user and returns the
// updated row.
func (r *GORMListRepository) Rename(id, userID uint, name string) (*models.List, error) {
	list, err := r.findForUser(id, userID)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(list).Update("name", name).Error; err != nil {
		return nil, fmt.Errorf("failed to rename list %d: %w", id, err)
	}
	list.Name = name
	return list, nil
}

// Delete removes a list visible to the user along with its membership rows.
func (r *GORMListRepository) Delete(id, userID uint) error {
	if _, err := r.findForUser(id, userID); err != nil {
		return err
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.List{}, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Where("list_id = ?", id).Delete(&models.ListMembership{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete list %d: %w", id, err)
	}
	return nil
}
