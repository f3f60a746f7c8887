package http

import (
	"menu-catalog-admin/internal/catalog"
	"menu-catalog-admin/internal/catalog/view"
	"menu-catalog-admin/internal/model"
)

// --- Request DTOs ---

type listReq struct {
	Search string `form:"search"`
	Page   int    `form:"page"`
}

func (r listReq) validate() error { return nil }

type updateDraftReq struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// --- Response DTOs ---

type categoryResp struct {
	ID   string `json:"categoryId"`
	Name string `json:"name"`
}

func newCategoryResp(c model.Category) categoryResp {
	return categoryResp{ID: c.ID, Name: c.Name}
}

type itemResp struct {
	ID          string       `json:"menuItemId"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Category    categoryResp `json:"category"`
	Image       string       `json:"image"`
	IsFavorite  bool         `json:"isFavorite"`
	IsAvailable bool         `json:"isAvailable"`
}

func newItemResp(it model.MenuItem) itemResp {
	return itemResp{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		Category:    newCategoryResp(it.Category),
		Image:       it.Image,
		IsFavorite:  it.IsFavorite,
		IsAvailable: it.IsAvailable,
	}
}

type listResp struct {
	Items        []itemResp `json:"items"`
	SearchTerm   string     `json:"searchTerm"`
	CurrentPage  int        `json:"currentPage"`
	ItemsPerPage int        `json:"itemsPerPage"`
	TotalPages   int        `json:"totalPages"`
	TotalItems   int        `json:"totalItems"`
	IsLoading    bool       `json:"isLoading"`
}

func (h *handler) newListResp(snap view.Snapshot, loading bool) listResp {
	items := make([]itemResp, len(snap.Items))
	for i, it := range snap.Items {
		items[i] = newItemResp(it)
	}
	return listResp{
		Items:        items,
		SearchTerm:   snap.SearchTerm,
		CurrentPage:  snap.CurrentPage,
		ItemsPerPage: snap.ItemsPerPage,
		TotalPages:   snap.TotalPages,
		TotalItems:   snap.TotalItems,
		IsLoading:    loading,
	}
}

type categoriesResp struct {
	Categories []categoryResp `json:"categories"`
}

func (h *handler) newCategoriesResp(cats []model.Category) categoriesResp {
	out := make([]categoryResp, len(cats))
	for i, c := range cats {
		out[i] = newCategoryResp(c)
	}
	return categoriesResp{Categories: out}
}

type draftResp struct {
	ItemID      string       `json:"menuItemId,omitempty"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       string       `json:"price"`
	Category    categoryResp `json:"category"`
	IsFavorite  bool         `json:"isFavorite"`
	IsAvailable bool         `json:"isAvailable"`
	ImageName   string       `json:"imageName,omitempty"`
}

type modalResp struct {
	State        string    `json:"state"`
	Draft        draftResp `json:"draft"`
	PreviewToken string    `json:"previewToken,omitempty"`
}

func (h *handler) newModalResp(mv catalog.ModalView) modalResp {
	return modalResp{
		State: mv.State.String(),
		Draft: draftResp{
			ItemID:      mv.Draft.ItemID,
			Name:        mv.Draft.Name,
			Description: mv.Draft.Description,
			Price:       mv.Draft.Price,
			Category:    newCategoryResp(mv.Draft.Category),
			IsFavorite:  mv.Draft.IsFavorite,
			IsAvailable: mv.Draft.IsAvailable,
			ImageName:   mv.Draft.ImageName,
		},
		PreviewToken: mv.PreviewToken,
	}
}
