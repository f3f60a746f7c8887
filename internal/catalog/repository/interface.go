package repository

import (
	"context"

	"menu-catalog-admin/internal/model"
)

// Repository is the composed access contract for the remote catalog API.
type Repository interface {
	CategoryRepository
	MenuItemRepository
}

// CategoryRepository reads the category list. Categories are owned by the
// remote catalog and never written from here.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
}

// MenuItemRepository defines all remote operations on menu items.
type MenuItemRepository interface {
	ListMenuItems(ctx context.Context) ([]model.MenuItem, error)
	CreateMenuItem(ctx context.Context, opt CreateMenuItemOptions) (model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, opt UpdateMenuItemOptions) (model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error
}
