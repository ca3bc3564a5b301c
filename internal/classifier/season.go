package classifier

import "github.com/yagi-creator/educational-materials-analyzer/internal/model"

// ExtractSeasonExam 正規化済み商品名から季節と入試フラグを判別する
// 入試キーワードが最優先: 一致した時点で (季節なし, true) を返し、
// 季節キーワードが同居していても季節は付与しない。
// 入試でなければ季節表を宣言順（春期→夏期→冬期）に試す
func ExtractSeasonExam(normalized string) (model.Season, bool) {
	if containsAny(normalized, examKeywords) {
		return model.SeasonNone, true
	}

	for _, entry := range seasonKeywords {
		if containsAny(normalized, entry.Keywords) {
			return entry.Season, false
		}
	}

	return model.SeasonNone, false
}

// IsComposite 合本教材（複数科目をまとめた教材）かどうか
// 他の分類と独立: 入試教材かつ合本、季節教材かつ合本がありうる
func IsComposite(normalized string) bool {
	return containsAny(normalized, compositeKeywords)
}
