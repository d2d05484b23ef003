package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "maxbot-api/docs" // Swagger docs
	identityHTTP "maxbot-api/internal/identity/delivery/http"
	"maxbot-api/internal/middleware"
)

const environmentProduction = "production"

func (srv HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, middleware.Config{RequestsPerMin: srv.requestsPerMin})

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	if srv.mode != gin.TestMode {
		srv.gin.Use(gin.Logger())
	}

	ctx := context.Background()
	if srv.environment == environmentProduction {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	api := srv.gin.Group("/api/v1")

	h := identityHTTP.New(srv.l, srv.identityUC)
	identityHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(context.Background(), "Identity routes registered at GET /api/v1/bot/me, /api/v1/bot/commands")
}
