package repositories

import (
	"fmt"
	"sort"
	"sync"

	"todolist/internal/models"
)

// MockListRepository is an in-memory implementation of ListRepository.
type MockListRepository struct {
	lists       map[uint]models.List
	memberships map[uint][]uint // list id -> member user ids
	nextID      uint
	mu          sync.RWMutex
}

// NewMockListRepository creates a new instance of MockListRepository.
func NewMockListRepository() *MockListRepository {
	return &MockListRepository{
		lists:       make(map[uint]models.List),
		memberships: make(map[uint][]uint),
		nextID:      1,
	}
}

func (r *MockListRepository) isMember(listID, userID uint) bool {
	for _, member := range r.memberships[listID] {
		if member == userID {
			return true
		}
	}
	return false
}

// GetAllForUser returns the lists the user is a member of, ordered by ascending id.
func (r *MockListRepository) GetAllForUser(userID uint) ([]models.List, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listList := make([]models.List, 0, len(r.lists))
	for id, list := range r.lists {
		if r.isMember(id, userID) {
			listList = append(listList, list)
		}
	}
	sort.Slice(listList, func(i, j int) bool { return listList[i].ID < listList[j].ID })
	return listList, nil
}

// CreateForUser adds a new list and records the creator's membership.
func (r *MockListRepository) CreateForUser(userID uint, list *models.List) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if list.ID == 0 {
		list.ID = r.nextID
		r.nextID++
	}
	r.lists[list.ID] = *list
	r.memberships[list.ID] = append(r.memberships[list.ID], userID)
	return nil
}

// Rename changes the name of a list the user is a member of.
func (r *MockListRepository) Rename(id, userID uint, name string) (*models.List, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, ok := r.lists[id]
	if !ok || !r.isMember(id, userID) {
		return nil, fmt.Errorf("list with ID %d: %w", id, ErrListNotFound)
	}
	list.Name = name
	r.lists[id] = list
	return &list, nil
}

// Delete removes a list the user is a member of, along with its memberships.
func (r *MockListRepository) Delete(id, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.lists[id]
	if !ok || !r.isMember(id, userID) {
		return fmt.Errorf("list with ID %d: %w", id, ErrListNotFound)
	}
	delete(r.lists, id)
	delete(r.memberships, id)
	return nil
}
