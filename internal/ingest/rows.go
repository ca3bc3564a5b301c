package ingest

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/yagi-creator/educational-materials-analyzer/internal/model"
)

// DropStats 除外行の内訳（診断用に件数を保持する）
type DropStats struct {
	InvalidQuantity int `json:"invalidQuantity"` // 冊数が0以下・数値でない
	InvalidDate     int `json:"invalidDate"`     // 注文日が解釈できない
	MissingSchool   int `json:"missingSchool"`   // 塾名が空
	MissingProduct  int `json:"missingProduct"`  // 商品名が空
}

// Total 除外行の総数
func (s DropStats) Total() int {
	return s.InvalidQuantity + s.InvalidDate + s.MissingSchool + s.MissingProduct
}

// ingestRows データ行を検証し、有効行を分類付きで取り込む
func (l *Loader) ingestRows(rows [][]string, colIndex [4]int) *Dataset {
	ds := &Dataset{
		Records: make([]model.ClassifiedRecord, 0, len(rows)),
		RawRows: len(rows),
	}

	for _, row := range rows {
		quantity, ok := parseQuantity(cellAt(row, colIndex[colQuantity]))
		if !ok || quantity <= 0 {
			ds.Dropped.InvalidQuantity++
			continue
		}

		orderDate, ok := parseDate(cellAt(row, colIndex[colDate]))
		if !ok {
			ds.Dropped.InvalidDate++
			continue
		}

		school := strings.TrimSpace(cellAt(row, colIndex[colSchool]))
		if school == "" {
			ds.Dropped.MissingSchool++
			continue
		}

		product := cellAt(row, colIndex[colProduct])
		if strings.TrimSpace(product) == "" {
			ds.Dropped.MissingProduct++
			continue
		}

		ds.Records = append(ds.Records, model.ClassifiedRecord{
			OrderRecord: model.OrderRecord{
				OrderDate:   orderDate,
				SchoolName:  school,
				ProductName: product,
				Quantity:    quantity,
			},
			Classification: l.classifier.Classify(product),
		})
	}

	return ds
}

// cellAt 行の範囲外を空文字として扱う（末尾の空セルは省略されて返るため）
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseQuantity 冊数を整数として解釈する（"3.0" のような表記は切り捨て）
func parseQuantity(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// セル書式に依存して返りうる日付表記
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006/1/2",
	"2006-1-2",
	"2006年1月2日",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1-2-06",
}

// parseDate 注文日セルを日単位の時刻に解釈する
// 文字列表記を順に試し、最後にExcelシリアル値を試す
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateToDay(t), true
		}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return truncateToDay(t), true
		}
	}

	return time.Time{}, false
}

// truncateToDay 日粒度より細かい情報は下流で使わないため落とす
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
