package model

import (
	"errors"
	"fmt"
	"strings"
)

// センチネルエラー
var (
	ErrDatasetNotFound = errors.New("dataset not found")
)

// MissingColumnsError 必須列が入力に存在しない場合の致命的エラー
// 欠けている列名をすべて保持し、利用者にそのまま提示する
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("必要な列が見つかりません: %s", strings.Join(e.Columns, ", "))
}
