package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	taskHTTP "task-quick-add/internal/task/delivery/http"
)

// setupTaskDomain registers the task routes.
//
// Pattern to follow when adding a new domain:
//  1. Build the UseCase in cmd/api and pass it through Config.
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, srv.mw)
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := taskHTTP.New(srv.l, srv.taskUC)

	// Registers /api/v1/tasks/parse and /api/v1/tasks/quick-add
	taskHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
