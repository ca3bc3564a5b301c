package classifier

import (
	"testing"

	"github.com/yagi-creator/educational-materials-analyzer/internal/model"
)

func TestExtractSeasonExam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		wantSeason model.Season
		wantExam   bool
	}{
		{"夏期", "夏期講習テキスト", model.SeasonSummer, false},
		{"カタカナのサマー", "サマーワーク英語", model.SeasonSummer, false},
		{"半角カナ", "ｳｨﾝﾀｰ特訓 数学", model.SeasonWinter, false},
		{"ラテン文字", "Spring準備講座", model.SeasonSpring, false},
		{"新学期は春期", "新学期スタートセット", model.SeasonSpring, false},
		{"入試", "高校入試対策 過去問集", model.SeasonNone, true},
		{"入試が季節より優先", "夏期 受験対策ゼミ", model.SeasonNone, true},
		{"合格も入試扱い", "合格への道 数学", model.SeasonNone, true},
		{"どちらでもない", "中2 数学 標準ワーク", model.SeasonNone, false},
		{"空文字", "", model.SeasonNone, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			season, isExam := ExtractSeasonExam(Normalize(tt.input))
			if season != tt.wantSeason || isExam != tt.wantExam {
				t.Fatalf("ExtractSeasonExam(%q) = (%q, %v), want (%q, %v)",
					tt.input, season, isExam, tt.wantSeason, tt.wantExam)
			}
		})
	}
}

func TestIsComposite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"5科目総まとめパック", true},
		{"小3算数・国語セット", true},
		{"夏期総復習 合本", true},
		{"中2 数学 標準ワーク", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsComposite(Normalize(tt.input)); got != tt.want {
			t.Fatalf("IsComposite(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  model.Classification
	}{
		{
			name:  "中2数学の夏期教材",
			input: "中2 数学 夏期講習テキスト",
			want: model.Classification{
				Grade:    model.GradeM2,
				Subject:  model.SubjectMath,
				Season:   model.SeasonSummer,
				Category: model.CategorySummer,
			},
		},
		{
			name:  "高校入試の過去問",
			input: "高校入試対策 過去問集",
			want: model.Classification{
				Grade:    model.GradeHigh,
				Subject:  model.SubjectOther,
				IsExam:   true,
				Category: model.CategoryExam,
			},
		},
		{
			name:  "小3の合本セット",
			input: "小3算数・国語セット",
			want: model.Classification{
				Grade:       model.GradeE3,
				Subject:     model.SubjectArith,
				IsComposite: true,
				Category:    model.CategoryAnnual,
			},
		},
		{
			name:  "入試かつ合本",
			input: "受験対策 5科目パック",
			want: model.Classification{
				Subject:     model.SubjectOther,
				IsExam:      true,
				IsComposite: true,
				Category:    model.CategoryExam,
			},
		},
		{
			name:  "空文字は既定分類",
			input: "",
			want:  model.DefaultClassification(),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tt.input); got != tt.want {
				t.Fatalf("Classify(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

// カテゴリは 入試 > 季節 > 通年 の優先順で必ずひとつだけ付く
func TestClassify_CategoryExclusive(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"中2 数学 夏期講習テキスト",
		"高校入試対策 過去問集",
		"冬期 受験直前対策",
		"小4 国語ワーク",
		"スプリング英語セット",
		"",
	}

	for _, input := range inputs {
		c := Classify(input)
		switch {
		case c.IsExam:
			if c.Category != model.CategoryExam {
				t.Fatalf("%q: exam but category=%q", input, c.Category)
			}
			if c.Season != model.SeasonNone {
				t.Fatalf("%q: exam material carries season %q", input, c.Season)
			}
		case c.Season != model.SeasonNone:
			if c.Category != model.Category(c.Season) {
				t.Fatalf("%q: season=%q category=%q", input, c.Season, c.Category)
			}
		default:
			if c.Category != model.CategoryAnnual {
				t.Fatalf("%q: expected 通年, got %q", input, c.Category)
			}
		}
		if !model.ValidTab(c.Category) {
			t.Fatalf("%q: category %q is not a recognized tab", input, c.Category)
		}
	}
}

func TestClassifier_CacheIdempotent(t *testing.T) {
	t.Parallel()

	c := NewClassifier()
	first := c.Classify("中2 数学 夏期講習テキスト")
	second := c.Classify("中2 数学 夏期講習テキスト")
	if first != second {
		t.Fatalf("classification not idempotent: %+v vs %+v", first, second)
	}
	if c.CacheSize() != 1 {
		t.Fatalf("cache size = %d, want 1", c.CacheSize())
	}
}
