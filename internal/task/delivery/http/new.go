package http

import (
	"github.com/gin-gonic/gin"

	"task-quick-add/internal/task"
	"task-quick-add/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	QuickAdd(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
