package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-planner/internal/tasks"
	"personal-task-planner/pkg/log"
)

// Handler is the public interface for the tasks HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Views(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Toggle(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc tasks.UseCase
}

// New creates a new HTTP handler for the tasks domain.
func New(l log.Logger, uc tasks.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
