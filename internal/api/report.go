package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yagi-creator/educational-materials-analyzer/internal/analyzer"
	"github.com/yagi-creator/educational-materials-analyzer/internal/config"
	"github.com/yagi-creator/educational-materials-analyzer/internal/model"
)

// ListSchools データセット内の塾名一覧（query で部分一致検索）
// GET /api/datasets/:id/schools?query=
func (h *Handler) ListSchools(c *gin.Context) {
	schools, err := h.store.Schools(c.Param("id"), c.Query("query"))
	if err != nil {
		if errors.Is(err, model.ErrDatasetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "データセットが見つかりません"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"schools": schools, "count": len(schools)})
}

// GetReport 1塾・1タブ分のレポート
// GET /api/datasets/:id/report?school=&tab=&bulkThreshold=
func (h *Handler) GetReport(c *gin.Context) {
	school := c.Query("school")
	if school == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "school を指定してください"})
		return
	}

	tab := model.Category(c.DefaultQuery("tab", string(model.CategoryAnnual)))
	if !model.ValidTab(tab) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "不明なタブ: " + string(tab)})
		return
	}

	bulkThreshold := h.defaultBulkThreshold()
	if v := c.Query("bulkThreshold"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || !config.ValidBulkThreshold(parsed) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bulkThreshold は1〜50の整数で指定してください"})
			return
		}
		bulkThreshold = parsed
	}

	records, err := h.store.SchoolRecords(c.Param("id"), school)
	if err != nil {
		if errors.Is(err, model.ErrDatasetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "データセットが見つかりません"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	report := analyzer.BuildTabReport(records, school, tab, bulkThreshold, h.unitPrice())
	c.JSON(http.StatusOK, report)
}
