package store

import (
	"context"
	"sync"

	"menu-catalog-admin/internal/catalog/repository"
	"menu-catalog-admin/internal/model"
	pkgLog "menu-catalog-admin/pkg/log"
)

// Categories holds the set of available categories, fetched from the remote
// catalog. On a failed fetch the previous value is kept; there is no
// automatic retry.
type Categories struct {
	repo repository.CategoryRepository
	l    pkgLog.Logger

	mu   sync.RWMutex
	list []model.Category
}

// NewCategories creates an empty category store.
func NewCategories(repo repository.CategoryRepository, l pkgLog.Logger) *Categories {
	return &Categories{
		repo: repo,
		l:    l,
	}
}

// Fetch loads the category list. The stored value only changes on success.
func (s *Categories) Fetch(ctx context.Context) error {
	cats, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.l.Errorf(ctx, "store.Categories.Fetch: %v", err)
		return err
	}

	s.mu.Lock()
	s.list = cats
	s.mu.Unlock()
	return nil
}

// Categories returns a snapshot copy in fetch order.
func (s *Categories) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Category, len(s.list))
	copy(out, s.list)
	return out
}

// Lookup resolves a category by id.
func (s *Categories) Lookup(id string) (model.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.list {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// First returns the first category, used as the default for new drafts.
func (s *Categories) First() (model.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.list) == 0 {
		return model.Category{}, false
	}
	return s.list[0], true
}
