package notify

import (
	"context"

	"menu-catalog-admin/internal/catalog"
	pkgLog "menu-catalog-admin/pkg/log"
)

type logNotifier struct {
	l pkgLog.Logger
}

// NewLog creates a Notifier that writes operator messages to the service log.
// The admin UI polls the workflow state for display; this keeps an audit
// trail of what the operator was told.
func NewLog(l pkgLog.Logger) catalog.Notifier {
	return &logNotifier{l: l}
}

func (n *logNotifier) Success(ctx context.Context, message string) {
	n.l.Infof(ctx, "notify: %s", message)
}

func (n *logNotifier) Error(ctx context.Context, message string) {
	n.l.Warnf(ctx, "notify: %s", message)
}
