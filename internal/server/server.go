// Package server wires the routes onto a gin engine and owns the
// underlying http.Server.
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"mixcrate/internal/config"
	"mixcrate/internal/handler"
	"mixcrate/internal/middleware"
)

type Server struct {
	httpServer *http.Server
	config     *config.ServerConfig
}

func New(cfg *config.Config, h *handler.Handler) *Server {
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      NewRouter(cfg, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Server{
		httpServer: srv,
		config:     &cfg.Server,
	}
}

// NewRouter builds the gin engine with the full route table.
func NewRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging())
	router.Use(middleware.CORS(cfg.Server.CORSOrigins))

	router.GET("/", h.Index)

	api := router.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/files", h.ListFiles)
		api.GET("/tags/:root/*filepath", h.GetTags)
		api.POST("/save", h.Save)
		api.POST("/move-to-input", h.MoveToInput)
		api.DELETE("/files/:root/*filepath", h.DeleteFile)
		api.GET("/play/:root/*filepath", h.Play)
		api.POST("/bpm/estimate", h.EstimateBpm)
	}

	return router
}

func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
