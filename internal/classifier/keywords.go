// Package classifier は商品名文字列から学年・科目・季節・入試・合本の
// 各属性を判別する分類エンジンを提供します。
// キーワード表はデータとして定義され、判別ロジックに触れずに拡張できます。
package classifier

import "github.com/yagi-creator/educational-materials-analyzer/internal/model"

// seasonEntry 季節キーワード（宣言順 = 判定優先順）
type seasonEntry struct {
	Season   model.Season
	Keywords []string
}

// 季節キーワード表
// 表記ゆれ（ラテン文字・カタカナ全半角・漢字異体）を列挙する
var seasonKeywords = []seasonEntry{
	{
		Season: model.SeasonSpring,
		Keywords: []string{
			"spring", "Spring", "SPRING",
			"スプリング", "ｽﾌﾟﾘﾝｸﾞ", "スプリンク", "ｽﾌﾟﾘﾝｸ",
			"春期", "春季", "春講", "新学期",
		},
	},
	{
		Season: model.SeasonSummer,
		Keywords: []string{
			"summer", "Summer", "SUMMER",
			"サマー", "ｻﾏｰ", "サマ", "ｻﾏ",
			"夏期", "夏季", "夏講", "夏休み",
		},
	},
	{
		Season: model.SeasonWinter,
		Keywords: []string{
			"winter", "Winter", "WINTER",
			"ウィンター", "ウインター", "ｳｨﾝﾀｰ", "ｳｲﾝﾀｰ",
			"ウィンタ", "ウインタ", "ｳｨﾝﾀ", "ｳｲﾝﾀ",
			"冬期", "冬季", "冬講", "冬休み",
		},
	},
}

// 入試キーワード（季節より優先）
var examKeywords = []string{
	"入試", "受験", "高校入試", "入試対策", "受験対策",
	"過去問", "直前対策", "合格", "志望校",
}

// 合本キーワード（他の分類と独立）
var compositeKeywords = []string{
	"合本", "総合", "セット", "パック", "まとめ",
	"全科目", "5科目", "3科目", "オールイン",
	"複合", "総復習", "総まとめ", "統合",
}

// subjectEntry 科目キーワード（宣言順 = グループ順）
type subjectEntry struct {
	Subject  model.Subject
	Patterns []string
}

// 科目キーワード表
// 1文字パターン（国・数など）は複合語にも一致するため、順序が結果を左右する
var subjectPatterns = []subjectEntry{
	{model.SubjectJapanese, []string{"国語", "現代文", "古文", "漢文", "国"}},
	{model.SubjectArith, []string{"算数", "算"}},
	{model.SubjectMath, []string{"数学", "数"}},
	{model.SubjectEnglish, []string{"英語", "英"}},
	{model.SubjectScience, []string{"理科", "理", "物理", "化学", "生物", "地学"}},
	{model.SubjectSocial, []string{"社会", "社", "歴史", "地理", "公民", "政治", "経済"}},
}
