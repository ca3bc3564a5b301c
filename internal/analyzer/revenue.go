package analyzer

import (
	"math"

	"github.com/yagi-creator/educational-materials-analyzer/internal/model"
)

// CalculatePotential 売上増見込を計算する（通年カテゴリ・中学生のみ）
// 注文ゼロの主要科目ごとに、学年の基準冊数 × 単価 を積み上げる。
// 実績のない学年は中3基準値を学年係数（中1=2/4, 中2=3/4）で按分する。
// 中間平均の丸めは偶数丸め（math.RoundToEven）。結果は常に0以上
func CalculatePotential(schoolRecords []model.ClassifiedRecord, unitPrice int) int {
	target := filterAnnualMiddle(schoolRecords)
	if len(target) == 0 {
		return 0
	}

	// 中3基準値
	m3Totals := subjectTotals(FilterByGrade(target, model.GradeM3))
	engMathMax := maxOf(m3Totals[model.SubjectEnglish], m3Totals[model.SubjectMath])
	krsAvg := meanOfNonzero(m3Totals, roundHalfEven(float64(engMathMax)/2))

	total := 0
	for _, grade := range model.MiddleGrades {
		gradeRecords := FilterByGrade(target, grade)
		gradeTotals := subjectTotals(gradeRecords)

		var engMathBase, krsBase int
		if len(gradeRecords) > 0 {
			for _, t := range gradeTotals {
				if t > engMathBase {
					engMathBase = t
				}
			}
			krsBase = meanOfNonzero(gradeTotals, roundHalfEven(float64(engMathBase)/2))
		} else {
			switch grade {
			case model.GradeM1:
				engMathBase = roundHalfEven(float64(engMathMax) * 2 / 4)
				krsBase = roundHalfEven(float64(krsAvg) * 2 / 4)
			case model.GradeM2:
				engMathBase = roundHalfEven(float64(engMathMax) * 3 / 4)
				krsBase = roundHalfEven(float64(krsAvg) * 3 / 4)
			default:
				engMathBase = engMathMax
				krsBase = krsAvg
			}
		}

		for _, subject := range model.CoreMiddleSubjects {
			if gradeTotals[subject] > 0 {
				continue
			}
			if subject == model.SubjectEnglish || subject == model.SubjectMath {
				total += engMathBase * unitPrice
			} else {
				total += krsBase * unitPrice
			}
		}
	}

	return total
}

// filterAnnualMiddle 通年カテゴリかつ中1〜中3のレコードに絞る
func filterAnnualMiddle(records []model.ClassifiedRecord) []model.ClassifiedRecord {
	var out []model.ClassifiedRecord
	for _, r := range records {
		if r.Category == model.CategoryAnnual && r.Grade.IsMiddle() {
			out = append(out, r)
		}
	}
	return out
}

// subjectTotals 科目別の冊数合計
func subjectTotals(records []model.ClassifiedRecord) map[model.Subject]int {
	totals := make(map[model.Subject]int)
	for _, r := range records {
		totals[r.Subject] += r.Quantity
	}
	return totals
}

// meanOfNonzero 国語・理科・社会のうち非ゼロの合計の平均（偶数丸め）
// 3科目ともゼロなら fallback を返す
func meanOfNonzero(totals map[model.Subject]int, fallback int) int {
	krs := []model.Subject{model.SubjectJapanese, model.SubjectScience, model.SubjectSocial}
	sum, n := 0, 0
	for _, s := range krs {
		if totals[s] > 0 {
			sum += totals[s]
			n++
		}
	}
	if n == 0 {
		return fallback
	}
	return roundHalfEven(float64(sum) / float64(n))
}

func maxOf(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// roundHalfEven 偶数丸め（.5 は最も近い偶数へ）
func roundHalfEven(x float64) int {
	return int(math.RoundToEven(x))
}
