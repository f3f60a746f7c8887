package usecase

import (
	"context"
	"errors"

	"menu-catalog-admin/internal/catalog"
	"menu-catalog-admin/internal/catalog/preview"
	"menu-catalog-admin/internal/catalog/repository"
	"menu-catalog-admin/internal/catalog/view"
)

// Submit validates the open draft and pushes it to the remote catalog. On
// success the modal closes and the collection is refetched; on a transport
// failure the modal returns to its prior open state with the draft intact so
// the operator can retry without re-entering anything.
func (w *implWorkflow) Submit(ctx context.Context) error {
	w.mu.Lock()

	switch w.state {
	case catalog.ModalSubmitting:
		w.mu.Unlock()
		return catalog.ErrSubmitInFlight
	case catalog.ModalClosed:
		w.mu.Unlock()
		return catalog.ErrModalClosed
	}

	creating := w.state == catalog.ModalOpenForCreate
	if err := validateDraft(w.draft, creating, w.image != nil); err != nil {
		// Validation failures never change state or reach the network.
		w.mu.Unlock()
		return err
	}

	prior := w.state
	draft := w.draft
	image := w.image
	w.state = catalog.ModalSubmitting
	w.mu.Unlock()

	err := w.push(ctx, creating, draft, image)
	if err != nil {
		w.mu.Lock()
		w.state = prior // draft stays intact for retry
		w.mu.Unlock()

		w.l.Errorf(ctx, "wf.Submit: %v", err)
		w.notifier.Error(ctx, operatorMessage(err))
		return err
	}

	w.mu.Lock()
	w.discardLocked(ctx)
	w.mu.Unlock()

	if err := w.collection.FetchAll(ctx); err != nil {
		// The mutation itself succeeded; the list will resync on the next
		// refresh.
		w.l.Warnf(ctx, "wf.Submit: refresh after mutation failed: %v", err)
	}
	w.clampPage()

	if creating {
		w.notifier.Success(ctx, catalog.MsgItemCreated)
	} else {
		w.notifier.Success(ctx, catalog.MsgItemUpdated)
	}
	return nil
}

func (w *implWorkflow) push(ctx context.Context, creating bool, draft catalog.Draft, image *preview.Preview) error {
	var upload *repository.ImageUpload
	if image != nil {
		content, err := image.Bytes()
		if err != nil {
			return err
		}
		upload = &repository.ImageUpload{
			Filename: image.Filename(),
			Content:  content,
		}
	}

	if creating {
		_, err := w.repo.CreateMenuItem(ctx, repository.CreateMenuItemOptions{
			Name:        draft.Name,
			Description: draft.Description,
			Price:       draft.Price,
			CategoryID:  draft.Category.ID,
			IsFavorite:  draft.IsFavorite,
			IsAvailable: draft.IsAvailable,
			Image:       upload,
		})
		return err
	}

	_, err := w.repo.UpdateMenuItem(ctx, repository.UpdateMenuItemOptions{
		ID:          draft.ItemID,
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		CategoryID:  draft.Category.ID,
		IsFavorite:  draft.IsFavorite,
		IsAvailable: draft.IsAvailable,
		Image:       upload, // nil keeps the stored image
	})
	return err
}

// clampPage drops the view back to page 1 when the refreshed collection no
// longer reaches the current page.
func (w *implWorkflow) clampPage() {
	if w.viewState == nil {
		return
	}
	filtered := view.Filter(w.collection.Items(), w.viewState.SearchTerm())
	w.viewState.ClampPage(len(filtered))
}

// operatorMessage prefers the server-provided message when one exists.
func operatorMessage(err error) string {
	var apiErr *repository.APIError
	if errors.As(err, &apiErr) && apiErr.Message() != "" {
		return apiErr.Message()
	}
	return catalog.MsgGenericFailure
}
