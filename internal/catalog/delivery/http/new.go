package http

import (
	"github.com/gin-gonic/gin"

	"menu-catalog-admin/internal/catalog"
	"menu-catalog-admin/internal/catalog/store"
	"menu-catalog-admin/internal/catalog/view"
	pkgLog "menu-catalog-admin/pkg/log"
)

// Handler is the public interface for the catalog HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Refresh(c *gin.Context)
	ListCategories(c *gin.Context)
	Delete(c *gin.Context)

	GetModal(c *gin.Context)
	OpenAdd(c *gin.Context)
	OpenEdit(c *gin.Context)
	CloseModal(c *gin.Context)
	UpdateDraft(c *gin.Context)
	SelectImage(c *gin.Context)
	Submit(c *gin.Context)
}

type handler struct {
	l          pkgLog.Logger
	wf         catalog.Workflow
	collection *store.Collection
	categories *store.Categories
	viewState  *view.State
}

// New creates a new HTTP handler for the catalog admin domain.
func New(
	l pkgLog.Logger,
	wf catalog.Workflow,
	collection *store.Collection,
	categories *store.Categories,
	viewState *view.State,
) *handler {
	return &handler{
		l:          l,
		wf:         wf,
		collection: collection,
		categories: categories,
		viewState:  viewState,
	}
}
