// Package server はHTTPサーバの組み立てを行います。
package server

import (
	"github.com/gin-gonic/gin"

	"github.com/yagi-creator/educational-materials-analyzer/internal/api"
	"github.com/yagi-creator/educational-materials-analyzer/internal/config"
	"github.com/yagi-creator/educational-materials-analyzer/internal/store"
)

// Server HTTPサーバ
type Server struct {
	router *gin.Engine
	store  *store.DatasetStore
	api    *api.Handler
}

// NewServer サーバを生成する
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	datasetStore := store.NewDatasetStore()
	handler := api.NewHandler(datasetStore, cfg)

	s := &Server{
		router: gin.Default(),
		store:  datasetStore,
		api:    handler,
	}

	s.setupRoutes()
	return s
}

// setupRoutes ルートを設定する
func (s *Server) setupRoutes() {
	// CORS（フロントエンドは別配信）
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}
}

// Run サーバを起動する
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router ルータを返す（テスト用）
func (s *Server) Router() *gin.Engine {
	return s.router
}
