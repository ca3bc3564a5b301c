// Package api はレポート閲覧用のJSON APIハンドラを提供します。
package api

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/yagi-creator/educational-materials-analyzer/internal/config"
	"github.com/yagi-creator/educational-materials-analyzer/internal/ingest"
	"github.com/yagi-creator/educational-materials-analyzer/internal/store"
)

// Handler APIハンドラ
type Handler struct {
	store  *store.DatasetStore
	loader *ingest.Loader

	mu  sync.RWMutex
	cfg *config.AppConfig
}

// NewHandler APIハンドラを生成する
func NewHandler(datasetStore *store.DatasetStore, cfg *config.AppConfig) *Handler {
	return &Handler{
		store:  datasetStore,
		loader: ingest.NewLoader(),
		cfg:    cfg,
	}
}

// RegisterRoutes APIルートを登録する
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// システム状態
	router.GET("/status", h.GetStatus)

	// 設定
	router.GET("/config", h.GetConfig)
	router.PATCH("/config", h.UpdateConfig)

	// データ取り込み
	router.POST("/upload", h.Upload)

	// 塾・レポート照会
	router.GET("/datasets/:id/schools", h.ListSchools)
	router.GET("/datasets/:id/report", h.GetReport)
}

// defaultBulkThreshold 現在の大口発注基準の既定値
func (h *Handler) defaultBulkThreshold() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cfg.Analysis.BulkThreshold
}

// unitPrice 売上増見込の単価
func (h *Handler) unitPrice() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cfg.Analysis.UnitPrice
}
