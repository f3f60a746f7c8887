package catalog

import (
	"context"
	"io"
)

// Workflow drives the create/edit modal lifecycle for menu items.
// At most one modal is open and at most one submit is in flight at a time;
// calls that would violate that are rejected with the state errors in
// errors.go.
type Workflow interface {
	OpenAdd(ctx context.Context) (ModalView, error)
	OpenEdit(ctx context.Context, itemID string) (ModalView, error)
	Close(ctx context.Context) error
	UpdateField(ctx context.Context, upd FieldUpdate) (ModalView, error)
	SelectImage(ctx context.Context, filename string, r io.Reader) (ModalView, error)
	Submit(ctx context.Context) error
	View(ctx context.Context) ModalView
}

// Notifier surfaces operator-facing outcome messages. Injected so the
// workflow carries no global toast state.
type Notifier interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}
