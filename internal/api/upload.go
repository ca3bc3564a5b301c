package api

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yagi-creator/educational-materials-analyzer/internal/ingest"
	"github.com/yagi-creator/educational-materials-analyzer/internal/model"
)

// UploadResponse アップロード結果
type UploadResponse struct {
	DatasetID   string           `json:"datasetId"`
	RowCount    int              `json:"rowCount"`    // 取り込んだ有効行数
	RawRows     int              `json:"rawRows"`     // 入力行数（ヘッダ除く）
	DroppedRows int              `json:"droppedRows"` // 除外行数
	Dropped     ingest.DropStats `json:"dropped"`     // 除外行の内訳
	SchoolCount int              `json:"schoolCount"`
}

// Upload 年間注文データ（xlsx）を取り込む
// POST /api/upload
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "アップロードファイルが見つかりません"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".xlsx" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "対応ファイル形式: .xlsx"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ファイルを開けません"})
		return
	}
	defer f.Close()

	ds, err := h.loader.LoadWorkbook(f)
	if err != nil {
		var missingErr *model.MissingColumnsError
		if errors.As(err, &missingErr) {
			// 欠けている列名をそのまま利用者に提示する
			c.JSON(http.StatusBadRequest, gin.H{
				"error":          missingErr.Error(),
				"missingColumns": missingErr.Columns,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "データ読み込みエラー: " + err.Error()})
		return
	}

	id := h.store.Put(ds)
	schools, _ := h.store.Schools(id, "")

	c.JSON(http.StatusOK, UploadResponse{
		DatasetID:   id,
		RowCount:    len(ds.Records),
		RawRows:     ds.RawRows,
		DroppedRows: ds.Dropped.Total(),
		Dropped:     ds.Dropped,
		SchoolCount: len(schools),
	})
}
