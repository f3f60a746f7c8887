package http

import (
	"errors"
	"net/http"

	"menu-catalog-admin/internal/catalog"
	"menu-catalog-admin/internal/catalog/repository"
	pkgErrors "menu-catalog-admin/pkg/errors"
)

// mapError translates domain errors into HTTP errors. Validation failures
// carry the operator-facing message verbatim; remote failures surface the
// server-provided message when one exists.
func (h *handler) mapError(err error) error {
	var vErr *catalog.ValidationError
	if errors.As(err, &vErr) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, vErr.Message)
	}

	var apiErr *repository.APIError
	if errors.As(err, &apiErr) {
		message := apiErr.Message()
		if message == "" {
			message = catalog.MsgGenericFailure
		}
		return pkgErrors.NewHTTPError(http.StatusBadGateway, message)
	}

	switch {
	case errors.Is(err, catalog.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "menu item not found")
	case errors.Is(err, catalog.ErrModalAlreadyOpen),
		errors.Is(err, catalog.ErrModalClosed),
		errors.Is(err, catalog.ErrSubmitInFlight):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, catalog.ErrUnknownCategory),
		errors.Is(err, catalog.ErrUnknownField):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusBadGateway, catalog.MsgGenericFailure)
	}
}
