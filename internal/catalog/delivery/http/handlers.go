package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"menu-catalog-admin/internal/catalog"
	"menu-catalog-admin/internal/catalog/view"
	"menu-catalog-admin/pkg/response"
)

// List godoc
// @Summary     List menu items
// @Description Returns the filtered, paginated menu item view. Changing the search term resets to page 1.
// @Tags        Catalog
// @Produce     json
// @Param       search query string false "Case-insensitive term matched against name, description, and category"
// @Param       page   query int    false "1-based page index"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/catalog/menu-items [GET]
func (h *handler) List(c *gin.Context) {
	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.viewState.SetSearchTerm(req.Search)
	if req.Page > 0 {
		h.viewState.SetPage(req.Page)
	}

	snap := h.viewState.Derive(h.collection.Items())
	response.OK(c, h.newListResp(snap, h.collection.IsLoading()))
}

// Refresh godoc
// @Summary     Refresh the menu item collection
// @Description Refetches the full collection from the remote catalog, replacing local state.
// @Tags        Catalog
// @Produce     json
// @Success     200 {object} listResp
// @Failure     502 {object} response.Resp "Remote catalog unavailable"
// @Router      /api/v1/catalog/menu-items/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.collection.FetchAll(ctx); err != nil {
		h.l.Errorf(ctx, "catalog.Refresh: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	snap := h.viewState.Derive(h.collection.Items())
	response.OK(c, h.newListResp(snap, h.collection.IsLoading()))
}

// ListCategories godoc
// @Summary     List categories
// @Tags        Catalog
// @Produce     json
// @Success     200 {object} categoriesResp
// @Router      /api/v1/catalog/categories [GET]
func (h *handler) ListCategories(c *gin.Context) {
	response.OK(c, h.newCategoriesResp(h.categories.Categories()))
}

// Delete godoc
// @Summary     Delete a menu item
// @Description Deletes on the remote catalog first; local state only changes after the server confirms.
// @Tags        Catalog
// @Produce     json
// @Param       id path string true "Menu item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     502 {object} response.Resp "Remote catalog rejected the delete"
// @Router      /api/v1/catalog/menu-items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.collection.Remove(ctx, id); err != nil {
		h.l.Errorf(ctx, "catalog.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	// A delete can shrink the filtered set below the current page.
	filtered := view.Filter(h.collection.Items(), h.viewState.SearchTerm())
	h.viewState.ClampPage(len(filtered))

	response.OK(c, gin.H{"message": catalog.MsgItemDeleted})
}

// GetModal godoc
// @Summary     Current modal state
// @Tags        Modal
// @Produce     json
// @Success     200 {object} modalResp
// @Router      /api/v1/catalog/modal [GET]
func (h *handler) GetModal(c *gin.Context) {
	response.OK(c, h.newModalResp(h.wf.View(c.Request.Context())))
}

// OpenAdd godoc
// @Summary     Open the create modal
// @Tags        Modal
// @Produce     json
// @Success     200 {object} modalResp
// @Failure     409 {object} response.Resp "A modal is already open"
// @Router      /api/v1/catalog/modal/add [POST]
func (h *handler) OpenAdd(c *gin.Context) {
	ctx := c.Request.Context()

	mv, err := h.wf.OpenAdd(ctx)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, h.newModalResp(mv))
}

// OpenEdit godoc
// @Summary     Open the edit modal for an item
// @Tags        Modal
// @Produce     json
// @Param       id path string true "Menu item ID"
// @Success     200 {object} modalResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "A modal is already open"
// @Router      /api/v1/catalog/modal/edit/{id} [POST]
func (h *handler) OpenEdit(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	mv, err := h.wf.OpenEdit(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, h.newModalResp(mv))
}

// CloseModal godoc
// @Summary     Close the modal, discarding the draft
// @Tags        Modal
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     409 {object} response.Resp "No modal open or submit in flight"
// @Router      /api/v1/catalog/modal/close [POST]
func (h *handler) CloseModal(c *gin.Context) {
	if err := h.wf.Close(c.Request.Context()); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, nil)
}

// UpdateDraft godoc
// @Summary     Apply a field update to the open draft
// @Tags        Modal
// @Accept      json
// @Produce     json
// @Param       body body updateDraftReq true "Field update"
// @Success     200 {object} modalResp
// @Failure     400 {object} response.Resp "Unknown field or category"
// @Failure     409 {object} response.Resp "No modal open"
// @Router      /api/v1/catalog/modal/draft [PATCH]
func (h *handler) UpdateDraft(c *gin.Context) {
	ctx := c.Request.Context()

	upd, err := h.processUpdateDraftReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	mv, err := h.wf.UpdateField(ctx, upd)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, h.newModalResp(mv))
}

// SelectImage godoc
// @Summary     Select an image file for the open draft
// @Description Stores the file as a local preview; it is uploaded on submit. Re-selecting releases the previous preview.
// @Tags        Modal
// @Accept      multipart/form-data
// @Produce     json
// @Param       image formData file true "Image file"
// @Success     200 {object} modalResp
// @Failure     409 {object} response.Resp "No modal open"
// @Router      /api/v1/catalog/modal/image [POST]
func (h *handler) SelectImage(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	defer f.Close()

	mv, err := h.wf.SelectImage(ctx, fileHeader.Filename, f)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, h.newModalResp(mv))
}

// Submit godoc
// @Summary     Validate and submit the open draft
// @Description On success the modal closes and the collection is refetched. On a remote failure the modal stays open with the draft intact.
// @Tags        Modal
// @Produce     json
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     409 {object} response.Resp "No modal open or submit in flight"
// @Failure     502 {object} response.Resp "Remote catalog rejected the submit"
// @Router      /api/v1/catalog/modal/submit [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.wf.Submit(ctx); err != nil {
		var vErr *catalog.ValidationError
		if errors.As(err, &vErr) {
			response.Error(c, h.mapError(err), gin.H{"field": vErr.Field})
			return
		}
		response.Error(c, h.mapError(err), nil)
		return
	}

	snap := h.viewState.Derive(h.collection.Items())
	response.OK(c, h.newListResp(snap, h.collection.IsLoading()))
}
