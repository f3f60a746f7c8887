package remote

import (
	"context"

	"menu-catalog-admin/internal/catalog/repository"
	"menu-catalog-admin/internal/model"
	pkgLog "menu-catalog-admin/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates the catalog repository backed by the remote REST API.
func New(client *Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	cats, err := r.client.ListCategories(ctx)
	if err != nil {
		r.l.Errorf(ctx, "remote repository: failed to list categories: %v", err)
		return nil, err
	}

	out := make([]model.Category, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryToModel(c))
	}
	return out, nil
}

func (r *implRepository) ListMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	items, err := r.client.ListMenuItems(ctx)
	if err != nil {
		r.l.Errorf(ctx, "remote repository: failed to list menu items: %v", err)
		return nil, err
	}

	out := make([]model.MenuItem, 0, len(items))
	for _, it := range items {
		out = append(out, itemToModel(it))
	}
	return out, nil
}

func (r *implRepository) CreateMenuItem(ctx context.Context, opt repository.CreateMenuItemOptions) (model.MenuItem, error) {
	form := MenuItemForm{
		Name:        opt.Name,
		Description: opt.Description,
		Price:       opt.Price,
		CategoryID:  opt.CategoryID,
		IsFavorite:  opt.IsFavorite,
		IsAvailable: opt.IsAvailable,
	}
	if opt.Image != nil {
		form.ImageFilename = opt.Image.Filename
		form.ImageContent = opt.Image.Content
	}

	item, err := r.client.CreateMenuItem(ctx, form)
	if err != nil {
		r.l.Errorf(ctx, "remote repository: failed to create menu item: %v", err)
		return model.MenuItem{}, err
	}
	return itemToModel(*item), nil
}

func (r *implRepository) UpdateMenuItem(ctx context.Context, opt repository.UpdateMenuItemOptions) (model.MenuItem, error) {
	form := MenuItemForm{
		Name:        opt.Name,
		Description: opt.Description,
		Price:       opt.Price,
		CategoryID:  opt.CategoryID,
		IsFavorite:  opt.IsFavorite,
		IsAvailable: opt.IsAvailable,
	}
	if opt.Image != nil {
		form.ImageFilename = opt.Image.Filename
		form.ImageContent = opt.Image.Content
	}

	item, err := r.client.UpdateMenuItem(ctx, opt.ID, form)
	if err != nil {
		r.l.Errorf(ctx, "remote repository: failed to update menu item %s: %v", opt.ID, err)
		return model.MenuItem{}, err
	}
	return itemToModel(*item), nil
}

func (r *implRepository) DeleteMenuItem(ctx context.Context, id string) error {
	if err := r.client.DeleteMenuItem(ctx, id); err != nil {
		r.l.Errorf(ctx, "remote repository: failed to delete menu item %s: %v", id, err)
		return err
	}
	return nil
}

func categoryToModel(c Category) model.Category {
	return model.Category{
		ID:   c.ID,
		Name: c.Name,
	}
}

func itemToModel(it MenuItem) model.MenuItem {
	return model.MenuItem{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		Category:    categoryToModel(it.Category),
		Image:       it.Image,
		IsFavorite:  it.IsFavorite,
		IsAvailable: it.IsAvailable,
	}
}
