package usecase

import (
	"context"
	"io"
	"strconv"

	"menu-catalog-admin/internal/catalog"
)

// OpenAdd opens the modal for a new menu item. The draft defaults to the
// first known category (or an empty sentinel when none are loaded yet),
// price "0", not favorite, available.
func (w *implWorkflow) OpenAdd(ctx context.Context) (catalog.ModalView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != catalog.ModalClosed {
		return w.viewLocked(), catalog.ErrModalAlreadyOpen
	}

	cat, _ := w.categories.First()
	w.draft = catalog.Draft{
		Price:       "0",
		Category:    cat,
		IsFavorite:  false,
		IsAvailable: true,
	}
	w.state = catalog.ModalOpenForCreate
	return w.viewLocked(), nil
}

// OpenEdit opens the modal for an existing item, seeding the draft with a
// shallow copy of its fields.
func (w *implWorkflow) OpenEdit(ctx context.Context, itemID string) (catalog.ModalView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != catalog.ModalClosed {
		return w.viewLocked(), catalog.ErrModalAlreadyOpen
	}

	item, ok := w.collection.Get(itemID)
	if !ok {
		return w.viewLocked(), catalog.ErrItemNotFound
	}

	w.draft = catalog.Draft{
		ItemID:      item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       strconv.FormatFloat(item.Price, 'f', -1, 64),
		Category:    item.Category,
		IsFavorite:  item.IsFavorite,
		IsAvailable: item.IsAvailable,
	}
	w.state = catalog.ModalOpenForEdit
	return w.viewLocked(), nil
}

// Close discards the draft and releases the selected-image preview. Rejected
// while a submit is in flight.
func (w *implWorkflow) Close(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case catalog.ModalClosed:
		return catalog.ErrModalClosed
	case catalog.ModalSubmitting:
		return catalog.ErrSubmitInFlight
	}

	w.discardLocked(ctx)
	return nil
}

// UpdateField applies a tagged field update to the open draft. Selecting a
// category resolves the id to the full entity from the category store.
func (w *implWorkflow) UpdateField(ctx context.Context, upd catalog.FieldUpdate) (catalog.ModalView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireOpenLocked(); err != nil {
		return w.viewLocked(), err
	}

	switch upd.Field {
	case catalog.FieldName:
		w.draft.Name = upd.Text
	case catalog.FieldDescription:
		w.draft.Description = upd.Text
	case catalog.FieldPrice:
		w.draft.Price = upd.Text
	case catalog.FieldCategoryID:
		cat, ok := w.categories.Lookup(upd.Text)
		if !ok {
			return w.viewLocked(), catalog.ErrUnknownCategory
		}
		w.draft.Category = cat
	case catalog.FieldIsFavorite:
		w.draft.IsFavorite = upd.Flag
	case catalog.FieldIsAvailable:
		w.draft.IsAvailable = upd.Flag
	default:
		return w.viewLocked(), catalog.ErrUnknownField
	}

	return w.viewLocked(), nil
}

// SelectImage stores the chosen file as a local preview. Selecting a new file
// releases the previous preview.
func (w *implWorkflow) SelectImage(ctx context.Context, filename string, r io.Reader) (catalog.ModalView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireOpenLocked(); err != nil {
		return w.viewLocked(), err
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return w.viewLocked(), err
	}

	p, err := w.previews.Acquire(ctx, filename, content)
	if err != nil {
		w.l.Errorf(ctx, "wf.SelectImage: %v", err)
		return w.viewLocked(), err
	}

	if w.image != nil {
		w.previews.Release(ctx, w.image)
	}
	w.image = p
	w.draft.ImageName = filename
	return w.viewLocked(), nil
}

// View returns a snapshot of the modal state and draft.
func (w *implWorkflow) View(ctx context.Context) catalog.ModalView {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.viewLocked()
}

func (w *implWorkflow) requireOpenLocked() error {
	switch w.state {
	case catalog.ModalOpenForCreate, catalog.ModalOpenForEdit:
		return nil
	case catalog.ModalSubmitting:
		return catalog.ErrSubmitInFlight
	default:
		return catalog.ErrModalClosed
	}
}

func (w *implWorkflow) viewLocked() catalog.ModalView {
	v := catalog.ModalView{
		State: w.state,
		Draft: w.draft,
	}
	if w.image != nil {
		v.PreviewToken = w.image.Token()
	}
	return v
}

func (w *implWorkflow) discardLocked(ctx context.Context) {
	if w.image != nil {
		w.previews.Release(ctx, w.image)
		w.image = nil
	}
	w.draft = catalog.Draft{}
	w.state = catalog.ModalClosed
}
