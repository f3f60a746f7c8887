package usecase

import (
	"sync"

	"menu-catalog-admin/internal/catalog"
	"menu-catalog-admin/internal/catalog/preview"
	"menu-catalog-admin/internal/catalog/repository"
	"menu-catalog-admin/internal/catalog/store"
	"menu-catalog-admin/internal/catalog/view"
	pkgLog "menu-catalog-admin/pkg/log"
)

// implWorkflow is the private implementation of catalog.Workflow. A single
// mutex guards the modal state machine: one open draft, one in-flight submit.
type implWorkflow struct {
	l          pkgLog.Logger
	repo       repository.Repository
	collection *store.Collection
	categories *store.Categories
	previews   *preview.Manager
	notifier   catalog.Notifier
	viewState  *view.State

	mu    sync.Mutex
	state catalog.ModalState
	draft catalog.Draft
	image *preview.Preview
}

// New creates the catalog mutation workflow.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	collection *store.Collection,
	categories *store.Categories,
	previews *preview.Manager,
	notifier catalog.Notifier,
	viewState *view.State,
) *implWorkflow {
	return &implWorkflow{
		l:          l,
		repo:       repo,
		collection: collection,
		categories: categories,
		previews:   previews,
		notifier:   notifier,
		viewState:  viewState,
		state:      catalog.ModalClosed,
	}
}
