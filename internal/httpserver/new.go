package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	catalogHTTP "menu-catalog-admin/internal/catalog/delivery/http"
	pkgLog "menu-catalog-admin/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	catalogHandler catalogHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	CatalogHandler catalogHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		catalogHandler: cfg.CatalogHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.catalogHandler == nil {
		return errors.New("catalog handler is required")
	}
	return nil
}
