package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
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

	api := srv.gin.Group("/api/v1")
	api.Use(srv.middleware.RateLimit())

	api.POST("/chat/answer", srv.chatHandler.Answer)
	api.POST("/prompt", srv.chatHandler.UpdatePrompt)
	srv.l.Infof(ctx, "chat routes registered under /api/v1")

	if srv.schedulerHandler != nil {
		api.POST("/whatsapp/schedule", srv.schedulerHandler.Schedule)
		api.GET("/whatsapp/scheduled", srv.schedulerHandler.List)
		api.DELETE("/whatsapp/scheduled/:id", srv.schedulerHandler.Cancel)
		srv.l.Infof(ctx, "whatsapp scheduling routes registered under /api/v1")
	} else {
		srv.l.Infof(ctx, "scheduler handler not configured, skipping whatsapp routes")
	}
}
