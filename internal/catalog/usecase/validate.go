package usecase

import (
	"strconv"
	"strings"

	"menu-catalog-admin/internal/catalog"
)

// validateDraft checks the draft before any network call. Creating requires a
// selected image; editing keeps the stored one when none is selected.
func validateDraft(d catalog.Draft, creating, hasImage bool) error {
	if strings.TrimSpace(d.Name) == "" {
		return &catalog.ValidationError{Field: "name", Message: catalog.MsgNameRequired}
	}
	if strings.TrimSpace(d.Description) == "" {
		return &catalog.ValidationError{Field: "description", Message: catalog.MsgDescriptionRequired}
	}
	if d.Category.ID == "" {
		return &catalog.ValidationError{Field: "categoryId", Message: catalog.MsgCategoryRequired}
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(d.Price), 64)
	if err != nil || price < 0 {
		return &catalog.ValidationError{Field: "price", Message: catalog.MsgPriceInvalid}
	}

	if creating && !hasImage {
		return &catalog.ValidationError{Field: "image", Message: catalog.MsgImageRequired}
	}
	return nil
}
