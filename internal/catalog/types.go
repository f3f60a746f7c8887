package catalog

import "menu-catalog-admin/internal/model"

// ModalState is the lifecycle state of the create/edit modal.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpenForCreate
	ModalOpenForEdit
	ModalSubmitting
)

func (s ModalState) String() string {
	switch s {
	case ModalClosed:
		return "closed"
	case ModalOpenForCreate:
		return "open_for_create"
	case ModalOpenForEdit:
		return "open_for_edit"
	case ModalSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Draft is the in-progress, unsaved edit held while a modal is open.
// Price is kept exactly as the operator typed it and parsed at submit time.
// Category is a snapshot of the full entity taken at selection time.
type Draft struct {
	ItemID      string // empty while creating
	Name        string
	Description string
	Price       string
	Category    model.Category
	IsFavorite  bool
	IsAvailable bool
	ImageName   string // file name of the selected image, empty when none
}

// Field identifies a single draft field for tagged updates.
type Field int

const (
	FieldName Field = iota
	FieldDescription
	FieldPrice
	FieldCategoryID
	FieldIsFavorite
	FieldIsAvailable
)

// FieldUpdate is a tagged partial patch applied to the open draft.
// Text carries the value for the text-like fields (FieldCategoryID holds the
// selected category id, resolved to the full entity by the workflow),
// Flag carries the value for the boolean fields.
type FieldUpdate struct {
	Field Field
	Text  string
	Flag  bool
}

// ModalView is a read-only snapshot of the workflow state for presentation.
type ModalView struct {
	State        ModalState
	Draft        Draft
	PreviewToken string // token of the selected-image preview, empty when none
}
