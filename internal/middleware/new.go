package middleware

import (
	pkgLog "menu-catalog-admin/pkg/log"
)

type Middleware struct {
	l pkgLog.Logger
}

func New(l pkgLog.Logger) Middleware {
	return Middleware{
		l: l,
	}
}
