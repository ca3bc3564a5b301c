package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yagi-creator/educational-materials-analyzer/internal/config"
)

// StatusResponse システム状態
type StatusResponse struct {
	DatasetCount  int `json:"datasetCount"`
	BulkThreshold int `json:"bulkThreshold"`
	UnitPrice     int `json:"unitPrice"`
}

// GetStatus システム状態を返す
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		DatasetCount:  h.store.Count(),
		BulkThreshold: h.defaultBulkThreshold(),
		UnitPrice:     h.unitPrice(),
	})
}

// ConfigResponse 設定の照会・更新結果
type ConfigResponse struct {
	BulkThreshold int `json:"bulkThreshold"`
	UnitPrice     int `json:"unitPrice"`
}

// GetConfig 分析パラメータを返す
// GET /api/config
func (h *Handler) GetConfig(c *gin.Context) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c.JSON(http.StatusOK, ConfigResponse{
		BulkThreshold: h.cfg.Analysis.BulkThreshold,
		UnitPrice:     h.cfg.Analysis.UnitPrice,
	})
}

// UpdateConfigRequest 設定更新リクエスト
type UpdateConfigRequest struct {
	BulkThreshold *int `json:"bulkThreshold"`
}

// UpdateConfig 大口発注基準の既定値を更新する（単価は固定）
// PATCH /api/config
func (h *Handler) UpdateConfig(c *gin.Context) {
	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "不正なリクエスト"})
		return
	}

	if req.BulkThreshold != nil {
		if !config.ValidBulkThreshold(*req.BulkThreshold) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bulkThreshold は1〜50の整数で指定してください"})
			return
		}
		h.mu.Lock()
		h.cfg.Analysis.BulkThreshold = *req.BulkThreshold
		h.mu.Unlock()
	}

	h.GetConfig(c)
}
