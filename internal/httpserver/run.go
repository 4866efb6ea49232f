package httpserver

import (
	"context"
	"fmt"
)

// Run maps all handlers and starts serving. Blocks until the listener
// stops.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return fmt.Errorf("map handlers: %w", err)
	}

	ctx := context.Background()
	srv.l.Infof(ctx, "HTTP server listening on :%d", srv.port)

	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
