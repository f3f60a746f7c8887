package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	catalogHTTP "menu-catalog-admin/internal/catalog/delivery/http"
	"menu-catalog-admin/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	mw := middleware.New(srv.l)
	api := srv.gin.Group("/api/v1")

	catalogHTTP.RegisterRoutes(api.Group("/catalog"), srv.catalogHandler, mw)
	srv.l.Infof(ctx, "Catalog admin routes registered under /api/v1/catalog")
}
