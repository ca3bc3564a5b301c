package classifier

import (
	"regexp"
	"strings"

	"github.com/yagi-creator/educational-materials-analyzer/internal/model"
)

// 小学生パターン（優先順）
var elementaryGradeRes = []*regexp.Regexp{
	regexp.MustCompile(`小\s*([1-6１-６])`),
	regexp.MustCompile(`小学\s*([1-6１-６])\s*年`),
	regexp.MustCompile(`([1-6１-６])\s*年生`),
}

// 中学生パターン（優先順）
var middleGradeRes = []*regexp.Regexp{
	regexp.MustCompile(`中\s*([1-3１-３])`),
	regexp.MustCompile(`中学\s*([1-3１-３])\s*年`),
}

// 高校パターン
var highSchoolRe = regexp.MustCompile(`(高校|高\s*[1-3１-３]|高等学校)`)

var fullWidthDigits = strings.NewReplacer(
	"１", "1", "２", "2", "３", "3",
	"４", "4", "５", "5", "６", "6",
)

// ExtractGrade 正規化済み商品名から学年を抽出する
// 小学生 → 中学生 → 高校 の順で最初に一致したパターンが勝つ。
// どれにも一致しなければ GradeUnknown
func ExtractGrade(normalized string) model.Grade {
	for _, re := range elementaryGradeRes {
		if m := re.FindStringSubmatch(normalized); m != nil {
			return model.Grade("小" + fullWidthDigits.Replace(m[1]))
		}
	}

	for _, re := range middleGradeRes {
		if m := re.FindStringSubmatch(normalized); m != nil {
			return model.Grade("中" + fullWidthDigits.Replace(m[1]))
		}
	}

	if highSchoolRe.MatchString(normalized) {
		return model.GradeHigh
	}

	return model.GradeUnknown
}
