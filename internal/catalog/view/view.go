package view

import (
	"strings"
	"sync"

	"menu-catalog-admin/internal/model"
)

// DefaultItemsPerPage is the fixed page size of the admin list.
const DefaultItemsPerPage = 10

// Filter returns the items whose name, description, or category name contains
// term case-insensitively, preserving order. An empty term returns the input
// unchanged.
func Filter(items []model.MenuItem, term string) []model.MenuItem {
	if term == "" {
		return items
	}

	needle := strings.ToLower(term)
	out := make([]model.MenuItem, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), needle) ||
			strings.Contains(strings.ToLower(it.Description), needle) ||
			strings.Contains(strings.ToLower(it.Category.Name), needle) {
			out = append(out, it)
		}
	}
	return out
}

// TotalPages is ceil(n/perPage), never below one page even when empty.
func TotalPages(n, perPage int) int {
	pages := (n + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Page slices one page out of the filtered items. A page past the end yields
// an empty page.
func Page(filtered []model.MenuItem, currentPage, perPage int) []model.MenuItem {
	start := (currentPage - 1) * perPage
	if start >= len(filtered) || start < 0 {
		return nil
	}
	end := start + perPage
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// State tracks the operator's search term and current page. The derived view
// is always recomputed from the collection, never patched incrementally.
type State struct {
	mu           sync.Mutex
	searchTerm   string
	currentPage  int
	itemsPerPage int
}

// NewState creates a view state on page 1 with an empty search term.
func NewState(itemsPerPage int) *State {
	if itemsPerPage <= 0 {
		itemsPerPage = DefaultItemsPerPage
	}
	return &State{
		currentPage:  1,
		itemsPerPage: itemsPerPage,
	}
}

// SetSearchTerm updates the search term. A changed term resets the current
// page to 1 so the new filter never lands on a stale page.
func (s *State) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if term == s.searchTerm {
		return
	}
	s.searchTerm = term
	s.currentPage = 1
}

// SetPage moves to the given 1-based page. Values below 1 are ignored.
func (s *State) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if page >= 1 {
		s.currentPage = page
	}
}

// ClampPage resets to page 1 when the current page starts past the end of the
// filtered set, which happens when a delete shrinks the collection.
func (s *State) ClampPage(filteredLen int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentPage > TotalPages(filteredLen, s.itemsPerPage) {
		s.currentPage = 1
	}
}

// SearchTerm returns the current search term.
func (s *State) SearchTerm() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchTerm
}

// CurrentPage returns the current 1-based page.
func (s *State) CurrentPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPage
}

// ItemsPerPage returns the fixed page size.
func (s *State) ItemsPerPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemsPerPage
}

// Snapshot is one fully derived view of the collection.
type Snapshot struct {
	Items        []model.MenuItem // the current page
	SearchTerm   string
	CurrentPage  int
	ItemsPerPage int
	TotalPages   int
	TotalItems   int // filtered count
}

// Derive recomputes the filtered, paged view from the given collection.
func (s *State) Derive(items []model.MenuItem) Snapshot {
	s.mu.Lock()
	term := s.searchTerm
	page := s.currentPage
	perPage := s.itemsPerPage
	s.mu.Unlock()

	filtered := Filter(items, term)
	return Snapshot{
		Items:        Page(filtered, page, perPage),
		SearchTerm:   term,
		CurrentPage:  page,
		ItemsPerPage: perPage,
		TotalPages:   TotalPages(len(filtered), perPage),
		TotalItems:   len(filtered),
	}
}
