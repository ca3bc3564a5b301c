// Package analyzer は分類済み注文レコードを塾・タブ・学年・科目別に
// 集計し、プレゼン層が消費するレポート構造を構築します。
package analyzer

import (
	"sort"
	"time"

	"github.com/yagi-creator/educational-materials-analyzer/internal/model"
)

// FilterByTab カテゴリがタブ名に一致するレコードを選ぶ
// 通年はカテゴリ値そのものであり、「季節・入試以外の残り」ではない
func FilterByTab(records []model.ClassifiedRecord, tab model.Category) []model.ClassifiedRecord {
	var out []model.ClassifiedRecord
	for _, r := range records {
		if r.Category == tab {
			out = append(out, r)
		}
	}
	return out
}

// FilterByGrade 学年が一致するレコードを選ぶ
func FilterByGrade(records []model.ClassifiedRecord, grade model.Grade) []model.ClassifiedRecord {
	var out []model.ClassifiedRecord
	for _, r := range records {
		if r.Grade == grade {
			out = append(out, r)
		}
	}
	return out
}

// dailyKey 商品×注文日
type dailyKey struct {
	product string
	day     time.Time
}

// rollupProducts 商品×日で冊数を合算し、商品ごとの合計と最大単日を求める
// 商品順・日順は入力行の初出順。最大単日の同値は先に現れた日が勝つ
func rollupProducts(records []model.ClassifiedRecord, bulkThreshold int) []model.ProductEntry {
	dailyTotals := make(map[dailyKey]int)
	dayOrder := make(map[string][]time.Time)
	var productOrder []string

	for _, r := range records {
		key := dailyKey{product: r.ProductName, day: r.OrderDate}
		if _, seen := dailyTotals[key]; !seen {
			if len(dayOrder[r.ProductName]) == 0 {
				productOrder = append(productOrder, r.ProductName)
			}
			dayOrder[r.ProductName] = append(dayOrder[r.ProductName], r.OrderDate)
		}
		dailyTotals[key] += r.Quantity
	}

	entries := make([]model.ProductEntry, 0, len(productOrder))
	for _, product := range productOrder {
		entry := model.ProductEntry{ProductName: product}
		for _, day := range dayOrder[product] {
			qty := dailyTotals[dailyKey{product: product, day: day}]
			entry.TotalQuantity += qty
			if qty > entry.PeakDayQuantity {
				entry.PeakDayQuantity = qty
				entry.PeakDayDate = day
			}
		}
		entry.IsBulk = entry.PeakDayQuantity >= bulkThreshold
		entries = append(entries, entry)
	}

	return entries
}

// buildSubjectSection 1科目分のセクションを構築する
func buildSubjectSection(records []model.ClassifiedRecord, subject model.Subject, maxSubjectTotal, bulkThreshold int, isComposite bool) model.SubjectSection {
	section := model.SubjectSection{
		Subject:     subject,
		IsComposite: isComposite,
		Products:    rollupProducts(records, bulkThreshold),
	}
	for _, p := range section.Products {
		section.TotalQuantity += p.TotalQuantity
	}

	// 科目合計が学年最大科目の半分以下なら強調（整数の切り捨て除算）
	low := maxSubjectTotal > 0 && section.TotalQuantity <= maxSubjectTotal/2
	for i := range section.Products {
		section.Products[i].IsLowEmphasis = low
	}

	return section
}

// BuildGradeSection 1学年分のセクションを構築する
// 科目は宣言順に並び、季節タブでは合本疑似科目が末尾に付く。
// 高校は科目分けせず商品合計の降順で並べる
func BuildGradeSection(gradeRecords []model.ClassifiedRecord, grade model.Grade, tab model.Category, bulkThreshold int) model.GradeSection {
	section := model.GradeSection{Grade: grade}

	if grade == model.GradeHigh {
		section.Products = rollupProducts(gradeRecords, bulkThreshold)
		sort.SliceStable(section.Products, func(i, j int) bool {
			return section.Products[i].TotalQuantity > section.Products[j].TotalQuantity
		})
		section.NeedsAttention = len(gradeRecords) == 0
		return section
	}

	if len(gradeRecords) == 0 {
		section.NeedsAttention = true
		return section
	}

	// 学年最大科目合計（強調判定の分母）。合本は科目バケツ側で数える
	subjectTotals := make(map[model.Subject]int)
	for _, r := range gradeRecords {
		subjectTotals[r.Subject] += r.Quantity
	}
	for _, total := range subjectTotals {
		if total > section.MaxSubjectTotal {
			section.MaxSubjectTotal = total
		}
	}

	for _, subject := range model.SubjectOrder {
		subjectRecords := filterBySubject(gradeRecords, subject)
		if len(subjectRecords) == 0 {
			// 中学生の主要5科目は、注文ゼロを未開拓として警告する
			if grade.IsMiddle() && isCoreMiddleSubject(subject) {
				section.Subjects = append(section.Subjects, model.SubjectSection{
					Subject:        subject,
					NeedsAttention: true,
				})
			}
			continue
		}
		section.Subjects = append(section.Subjects,
			buildSubjectSection(subjectRecords, subject, section.MaxSubjectTotal, bulkThreshold, false))
	}

	// 季節タブでは合本教材を独立セクションとして追加表示する
	if tab.IsSeasonal() {
		var compositeRecords []model.ClassifiedRecord
		for _, r := range gradeRecords {
			if r.IsComposite {
				compositeRecords = append(compositeRecords, r)
			}
		}
		if len(compositeRecords) > 0 {
			section.Subjects = append(section.Subjects,
				buildSubjectSection(compositeRecords, model.SubjectComposite, section.MaxSubjectTotal, bulkThreshold, true))
		}
	}

	return section
}

func filterBySubject(records []model.ClassifiedRecord, subject model.Subject) []model.ClassifiedRecord {
	var out []model.ClassifiedRecord
	for _, r := range records {
		if r.Subject == subject {
			out = append(out, r)
		}
	}
	return out
}

func isCoreMiddleSubject(subject model.Subject) bool {
	for _, s := range model.CoreMiddleSubjects {
		if s == subject {
			return true
		}
	}
	return false
}
