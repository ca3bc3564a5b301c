package analyzer

import (
	"github.com/yagi-creator/educational-materials-analyzer/internal/model"
)

// BuildTabReport 1塾・1タブ分のレポートを構築する
// schoolRecords は当該塾の全レコード（全カテゴリ）。年間実績と
// 売上増見込はタブに関係なく塾全体から計算される
func BuildTabReport(schoolRecords []model.ClassifiedRecord, school string, tab model.Category, bulkThreshold, unitPrice int) model.TabReport {
	report := model.TabReport{
		SchoolName:    school,
		Tab:           tab,
		BulkThreshold: bulkThreshold,
	}

	for _, r := range schoolRecords {
		report.AnnualTotal += r.Quantity
	}

	if tab == model.CategoryAnnual {
		report.RevenuePotential = CalculatePotential(schoolRecords, unitPrice)
	}

	tabRecords := FilterByTab(schoolRecords, tab)
	if len(tabRecords) == 0 {
		report.NeedsAttention = true
		return report
	}

	for _, grade := range displayGrades(tabRecords, tab) {
		gradeRecords := FilterByGrade(tabRecords, grade)
		report.Grades = append(report.Grades, BuildGradeSection(gradeRecords, grade, tab, bulkThreshold))
	}

	return report
}

// displayGrades タブごとの学年表示リスト
// 通年: 注文のある最初の小学生学年から小6まで、続けて中1〜中3、
// 高校は実績がある場合のみ末尾。入試: 中3のみ。季節: 中1〜中3
func displayGrades(tabRecords []model.ClassifiedRecord, tab model.Category) []model.Grade {
	switch {
	case tab == model.CategoryExam:
		return []model.Grade{model.GradeM3}
	case tab.IsSeasonal():
		return model.MiddleGrades
	}

	var grades []model.Grade
	for i, grade := range model.ElementaryGrades {
		if len(FilterByGrade(tabRecords, grade)) > 0 {
			grades = append(grades, model.ElementaryGrades[i:]...)
			break
		}
	}

	grades = append(grades, model.MiddleGrades...)

	if len(FilterByGrade(tabRecords, model.GradeHigh)) > 0 {
		grades = append(grades, model.GradeHigh)
	}

	return grades
}
