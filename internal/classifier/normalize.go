package classifier

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	longVowelRe  = regexp.MustCompile(`[ーｰ−―‐]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize 商品名テキストの正規化
// NFKC（全半角・字形の統一）→ 長音・ダッシュ類の統一 → 連続空白の圧縮。
// あらゆる入力（空文字含む）に対して失敗しない全域関数
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = norm.NFKC.String(text)
	text = longVowelRe.ReplaceAllString(text, "ー")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return text
}

// containsAny 文字列がキーワードのいずれかを部分文字列として含むか
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
