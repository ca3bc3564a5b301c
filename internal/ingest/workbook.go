// Package ingest は注文データのExcelワークブックを読み取り、
// 検証・分類済みの注文レコード集合に変換します。
package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yagi-creator/educational-materials-analyzer/internal/classifier"
	"github.com/yagi-creator/educational-materials-analyzer/internal/model"
)

// 必須列（アップロード元帳票の列名）
var requiredColumns = []string{"伝票日付", "得意先名１", "商品名", "数量"}

const (
	colDate = iota
	colSchool
	colProduct
	colQuantity
)

// Dataset 1回のアップロードから得られた検証・分類済みデータ
type Dataset struct {
	Records []model.ClassifiedRecord
	RawRows int // ヘッダを除く入力行数
	Dropped DropStats
}

// Loader ワークブック読み取り器
type Loader struct {
	classifier *classifier.Classifier
}

// NewLoader 読み取り器を生成する
func NewLoader() *Loader {
	return &Loader{classifier: classifier.NewClassifier()}
}

// LoadWorkbook xlsxワークブックを読み取り、先頭シートを取り込む
// 必須列が欠けている場合は MissingColumnsError（致命的・利用者に提示）。
// 行単位の不備は黙って除外し、件数を DropStats に記録する
func (l *Loader) LoadWorkbook(r io.Reader) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &model.MissingColumnsError{Columns: requiredColumns}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, &model.MissingColumnsError{Columns: requiredColumns}
	}

	colIndex, missing := mapColumns(rows[0])
	if len(missing) > 0 {
		return nil, &model.MissingColumnsError{Columns: missing}
	}

	return l.ingestRows(rows[1:], colIndex), nil
}

// mapColumns ヘッダ行から必須列の位置を解決する
// 戻り値は colDate..colQuantity の順の列インデックスと、欠けている列名
func mapColumns(header []string) ([4]int, []string) {
	var colIndex [4]int
	var missing []string

	for i, name := range requiredColumns {
		colIndex[i] = -1
		for j, cell := range header {
			if strings.TrimSpace(cell) == name {
				colIndex[i] = j
				break
			}
		}
		if colIndex[i] < 0 {
			missing = append(missing, name)
		}
	}

	return colIndex, missing
}
