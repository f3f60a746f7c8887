package http

import (
	"github.com/gin-gonic/gin"

	"menu-catalog-admin/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.RequestID(), mw.RequestLogger())

	items := rg.Group("/menu-items")
	{
		items.GET("", h.List)
		items.POST("/refresh", h.Refresh)
		items.DELETE("/:id", h.Delete)
	}

	rg.GET("/categories", h.ListCategories)

	modal := rg.Group("/modal")
	{
		modal.GET("", h.GetModal)
		modal.POST("/add", h.OpenAdd)
		modal.POST("/edit/:id", h.OpenEdit)
		modal.POST("/close", h.CloseModal)
		modal.PATCH("/draft", h.UpdateDraft)
		modal.POST("/image", h.SelectImage)
		modal.POST("/submit", h.Submit)
	}
}
