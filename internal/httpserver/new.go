package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	authHTTP "personal-task-planner/internal/auth/delivery/http"
	"personal-task-planner/internal/middleware"
	tasksHTTP "personal-task-planner/internal/tasks/delivery/http"
	"personal-task-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw           middleware.Middleware
	tasksHandler tasksHTTP.Handler
	authHandler  authHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware   middleware.Middleware
	TasksHandler tasksHTTP.Handler
	AuthHandler  authHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            cfg.Logger,
		gin:          gin.Default(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		mw:           cfg.Middleware,
		tasksHandler: cfg.TasksHandler,
		authHandler:  cfg.AuthHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.tasksHandler == nil {
		return errors.New("tasks handler is required")
	}
	if srv.authHandler == nil {
		return errors.New("auth handler is required")
	}
	return nil
}
