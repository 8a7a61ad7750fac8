package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"voice-task-management/internal/middleware"
	"voice-task-management/internal/model"
	taskHTTP "voice-task-management/internal/task/delivery/http"
	voiceHTTP "voice-task-management/internal/voice/delivery/http"
	voiceWS "voice-task-management/internal/voice/delivery/ws"
)

func (srv *HTTPServer) mapHandlers(mw middleware.Middleware) {
	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery(), mw.RequestID(), mw.AccessLog())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the task and voice domains under /api/v1.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1", mw.RateLimit())

	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, srv.taskUC))
	srv.l.Infof(ctx, "Task routes registered at /api/v1/tasks")

	voiceHTTP.RegisterRoutes(api, voiceHTTP.New(srv.l, srv.assistant))
	voiceWS.RegisterRoutes(api, voiceWS.New(srv.l, srv.assistant, srv.metrics, voiceWS.Config{
		AllowAnyOrigin: srv.allowAnyOrigin,
	}))
	srv.l.Infof(ctx, "Voice routes registered at /api/v1/voice/interpret and /api/v1/voice/ws")
}
