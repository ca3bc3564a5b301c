package analyzer

import (
	"testing"
	"time"

	"github.com/yagi-creator/educational-materials-analyzer/internal/model"
)

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func rec(product string, d time.Time, qty int, c model.Classification) model.ClassifiedRecord {
	return model.ClassifiedRecord{
		OrderRecord: model.OrderRecord{
			OrderDate:   d,
			SchoolName:  "さくら塾",
			ProductName: product,
			Quantity:    qty,
		},
		Classification: c,
	}
}

func TestRollupProducts_PeakDay(t *testing.T) {
	t.Parallel()

	cls := model.Classification{Grade: model.GradeM1, Subject: model.SubjectMath, Category: model.CategoryAnnual}
	records := []model.ClassifiedRecord{
		rec("数学ワークA", day(1), 2, cls),
		rec("数学ワークA", day(1), 3, cls), // 同日合算で5
		rec("数学ワークA", day(2), 4, cls),
		rec("数学ワークB", day(3), 1, cls),
	}

	entries := rollupProducts(records, 5)
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}

	a := entries[0]
	if a.ProductName != "数学ワークA" || a.TotalQuantity != 9 {
		t.Fatalf("unexpected entry: %+v", a)
	}
	if a.PeakDayQuantity != 5 || !a.PeakDayDate.Equal(day(1)) {
		t.Fatalf("peak = %d@%v, want 5@%v", a.PeakDayQuantity, a.PeakDayDate, day(1))
	}
	// 境界は以上: 基準5で単日5は大口
	if !a.IsBulk {
		t.Fatal("peak day 5 with threshold 5 should be bulk")
	}
	if entries[1].IsBulk {
		t.Fatalf("entry B should not be bulk: %+v", entries[1])
	}
}

// 最大単日が同値の日が複数ある場合は先に現れた日が勝つ
func TestRollupProducts_PeakDayTieFirstWins(t *testing.T) {
	t.Parallel()

	cls := model.Classification{Subject: model.SubjectMath, Category: model.CategoryAnnual}
	records := []model.ClassifiedRecord{
		rec("数学ワークA", day(4), 3, cls),
		rec("数学ワークA", day(2), 3, cls),
	}

	entries := rollupProducts(records, 99)
	if !entries[0].PeakDayDate.Equal(day(4)) {
		t.Fatalf("peak date = %v, want first-encountered %v", entries[0].PeakDayDate, day(4))
	}
}

// 大口基準を上げても大口→非大口にしか変わらない
func TestRollupProducts_ThresholdMonotonic(t *testing.T) {
	t.Parallel()

	cls := model.Classification{Subject: model.SubjectMath, Category: model.CategoryAnnual}
	records := []model.ClassifiedRecord{
		rec("A", day(1), 7, cls),
		rec("B", day(1), 3, cls),
		rec("C", day(2), 5, cls),
	}

	for threshold := 1; threshold < 10; threshold++ {
		low := rollupProducts(records, threshold)
		high := rollupProducts(records, threshold+1)
		for i := range low {
			if !low[i].IsBulk && high[i].IsBulk {
				t.Fatalf("threshold %d->%d turned %q bulk", threshold, threshold+1, low[i].ProductName)
			}
		}
	}
}

func TestBuildGradeSection_SubjectOrderAndEmphasis(t *testing.T) {
	t.Parallel()

	annual := func(s model.Subject) model.Classification {
		return model.Classification{Grade: model.GradeM1, Subject: s, Category: model.CategoryAnnual}
	}
	records := []model.ClassifiedRecord{
		rec("英語長文", day(1), 10, annual(model.SubjectEnglish)),
		rec("国語読解", day(1), 5, annual(model.SubjectJapanese)),
		rec("数学ワーク", day(1), 8, annual(model.SubjectMath)),
	}

	section := BuildGradeSection(records, model.GradeM1, model.CategoryAnnual, 5)

	if section.MaxSubjectTotal != 10 {
		t.Fatalf("maxSubjectTotal = %d, want 10", section.MaxSubjectTotal)
	}

	// 科目は宣言順: 国語, 数学, 英語 + 実績ゼロの主要科目（理科・社会）の警告
	wantOrder := []model.Subject{
		model.SubjectJapanese,
		model.SubjectMath,
		model.SubjectEnglish,
		model.SubjectScience,
		model.SubjectSocial,
	}
	if len(section.Subjects) != len(wantOrder) {
		t.Fatalf("subjects = %d, want %d", len(section.Subjects), len(wantOrder))
	}
	for i, want := range wantOrder {
		if section.Subjects[i].Subject != want {
			t.Fatalf("subjects[%d] = %q, want %q", i, section.Subjects[i].Subject, want)
		}
	}

	// 国語5冊は最大10冊の半分以下なので強調、英語・数学は強調なし
	for _, s := range section.Subjects {
		switch s.Subject {
		case model.SubjectJapanese:
			if !s.Products[0].IsLowEmphasis {
				t.Fatal("国語 should be low-emphasis")
			}
		case model.SubjectMath, model.SubjectEnglish:
			if s.Products[0].IsLowEmphasis {
				t.Fatalf("%s should not be low-emphasis", s.Subject)
			}
		case model.SubjectScience, model.SubjectSocial:
			if !s.NeedsAttention {
				t.Fatalf("%s with zero orders should need attention", s.Subject)
			}
			if len(s.Products) != 0 {
				t.Fatalf("%s should carry no products", s.Subject)
			}
		}
	}
}

func TestBuildGradeSection_CompositeOnSeasonalTab(t *testing.T) {
	t.Parallel()

	summer := model.Classification{
		Grade: model.GradeM2, Subject: model.SubjectArith,
		Season: model.SeasonSummer, IsComposite: true, Category: model.CategorySummer,
	}
	records := []model.ClassifiedRecord{
		rec("夏期総まとめセット", day(10), 4, summer),
	}

	section := BuildGradeSection(records, model.GradeM2, model.CategorySummer, 5)

	var composite *model.SubjectSection
	for i := range section.Subjects {
		if section.Subjects[i].IsComposite {
			composite = &section.Subjects[i]
		}
	}
	if composite == nil {
		t.Fatal("seasonal tab should include 合本 section")
	}
	if composite.Subject != model.SubjectComposite || composite.TotalQuantity != 4 {
		t.Fatalf("unexpected composite section: %+v", composite)
	}

	// 通年タブでは合本セクションは付かない
	annualSection := BuildGradeSection(records, model.GradeM2, model.CategoryAnnual, 5)
	for _, s := range annualSection.Subjects {
		if s.IsComposite {
			t.Fatal("annual tab must not include 合本 section")
		}
	}
}

func TestBuildGradeSection_Empty(t *testing.T) {
	t.Parallel()

	section := BuildGradeSection(nil, model.GradeM2, model.CategoryAnnual, 5)
	if !section.NeedsAttention {
		t.Fatal("empty grade should need attention")
	}
	if len(section.Subjects) != 0 {
		t.Fatalf("empty grade should carry no subjects: %+v", section.Subjects)
	}

	elem := BuildGradeSection(nil, model.GradeE3, model.CategoryAnnual, 5)
	if !elem.NeedsAttention {
		t.Fatal("empty elementary grade should need attention")
	}
}

func TestBuildGradeSection_HighSchool(t *testing.T) {
	t.Parallel()

	high := model.Classification{Grade: model.GradeHigh, Subject: model.SubjectJapanese, Category: model.CategoryAnnual}
	records := []model.ClassifiedRecord{
		rec("現代文読解", day(1), 2, high),
		rec("古文単語帳", day(1), 6, high),
	}

	section := BuildGradeSection(records, model.GradeHigh, model.CategoryAnnual, 5)
	if len(section.Subjects) != 0 {
		t.Fatal("高校 section should not group by subject")
	}
	// 冊数降順
	if len(section.Products) != 2 || section.Products[0].ProductName != "古文単語帳" {
		t.Fatalf("unexpected 高校 products: %+v", section.Products)
	}
}
