package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	chatDelivery "chatmate-assistant/internal/chat/delivery/http"
	"chatmate-assistant/internal/middleware"
	schedDelivery "chatmate-assistant/internal/scheduler/delivery/http"
	"chatmate-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	middleware middleware.Middleware

	chatHandler      chatDelivery.Handler
	schedulerHandler schedDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	ChatHandler      chatDelivery.Handler
	SchedulerHandler schedDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.Default(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		middleware:       cfg.Middleware,
		chatHandler:      cfg.ChatHandler,
		schedulerHandler: cfg.SchedulerHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
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
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	return nil
}

// Run blocks serving HTTP on the configured port.
func (srv *HTTPServer) Run() error {
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
