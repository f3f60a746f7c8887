package httpserver

import "fmt"

// Run registers all routes and blocks serving HTTP.
func (srv *HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
