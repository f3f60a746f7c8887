package store

import (
	"context"
	"sync"

	"menu-catalog-admin/internal/catalog/repository"
	"menu-catalog-admin/internal/model"
	pkgLog "menu-catalog-admin/pkg/log"
)

// Collection is the single source of truth for menu items. It mirrors the
// remote catalog: a fetch replaces the collection wholesale and deletes are
// confirmed by the server before any local change.
type Collection struct {
	repo repository.MenuItemRepository
	l    pkgLog.Logger

	mu      sync.RWMutex
	items   []model.MenuItem
	loading int // in-flight FetchAll count, overlapping fetches may stack
}

// NewCollection creates an empty menu item collection.
func NewCollection(repo repository.MenuItemRepository, l pkgLog.Logger) *Collection {
	return &Collection{
		repo: repo,
		l:    l,
	}
}

// FetchAll reloads the collection from the remote catalog, replacing the
// current items entirely. Overlapping calls are tolerated; the last reply to
// arrive wins since the server is the source of truth. The loading flag stays
// set for the whole call, including on error.
func (s *Collection) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	s.loading++
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading--
		s.mu.Unlock()
	}()

	items, err := s.repo.ListMenuItems(ctx)
	if err != nil {
		s.l.Errorf(ctx, "store.Collection.FetchAll: %v", err)
		return err
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// Remove deletes a menu item, pessimistically: the remote delete must succeed
// before the local collection is resynchronized with a FetchAll. On failure
// the collection is left untouched.
func (s *Collection) Remove(ctx context.Context, id string) error {
	if err := s.repo.DeleteMenuItem(ctx, id); err != nil {
		s.l.Errorf(ctx, "store.Collection.Remove %s: %v", id, err)
		return err
	}
	return s.FetchAll(ctx)
}

// IsLoading reports whether any FetchAll is in flight.
func (s *Collection) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading > 0
}

// Items returns a snapshot copy preserving fetch order.
func (s *Collection) Items() []model.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.MenuItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the current collection size.
func (s *Collection) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get resolves a menu item by id.
func (s *Collection) Get(id string) (model.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.MenuItem{}, false
}
