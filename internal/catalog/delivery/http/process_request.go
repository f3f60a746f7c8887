package http

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"menu-catalog-admin/internal/catalog"
)

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateDraftReq binds a draft field update and translates the wire
// field name into the typed tagged update the workflow expects.
func (h *handler) processUpdateDraftReq(c *gin.Context) (catalog.FieldUpdate, error) {
	var req updateDraftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return catalog.FieldUpdate{}, err
	}
	return req.toUpdate()
}

func parseField(name string) (catalog.Field, bool) {
	switch name {
	case "name":
		return catalog.FieldName, true
	case "description":
		return catalog.FieldDescription, true
	case "price":
		return catalog.FieldPrice, true
	case "categoryId":
		return catalog.FieldCategoryID, true
	case "isFavorite":
		return catalog.FieldIsFavorite, true
	case "isAvailable":
		return catalog.FieldIsAvailable, true
	default:
		return 0, false
	}
}

func (r updateDraftReq) toUpdate() (catalog.FieldUpdate, error) {
	field, ok := parseField(r.Field)
	if !ok {
		return catalog.FieldUpdate{}, fmt.Errorf("unknown draft field %q", r.Field)
	}

	upd := catalog.FieldUpdate{Field: field}
	switch field {
	case catalog.FieldIsFavorite, catalog.FieldIsAvailable:
		flag, err := strconv.ParseBool(r.Value)
		if err != nil {
			return catalog.FieldUpdate{}, fmt.Errorf("field %q needs a boolean value: %w", r.Field, err)
		}
		upd.Flag = flag
	default:
		upd.Text = r.Value
	}
	return upd, nil
}
