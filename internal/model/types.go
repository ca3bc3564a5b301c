package model

import "strings"

// Grade 学年（"小1"〜"小6"、"中1"〜"中3"、"高校"。空文字は学年不明）
type Grade string

const (
	GradeUnknown Grade = ""

	GradeE1 Grade = "小1"
	GradeE2 Grade = "小2"
	GradeE3 Grade = "小3"
	GradeE4 Grade = "小4"
	GradeE5 Grade = "小5"
	GradeE6 Grade = "小6"

	GradeM1 Grade = "中1"
	GradeM2 Grade = "中2"
	GradeM3 Grade = "中3"

	GradeHigh Grade = "高校"
)

// ElementaryGrades 小学生学年の表示順
var ElementaryGrades = []Grade{GradeE1, GradeE2, GradeE3, GradeE4, GradeE5, GradeE6}

// MiddleGrades 中学生学年の表示順
var MiddleGrades = []Grade{GradeM1, GradeM2, GradeM3}

// IsElementary 小学生学年かどうか
func (g Grade) IsElementary() bool {
	return strings.HasPrefix(string(g), "小")
}

// IsMiddle 中学生学年かどうか
func (g Grade) IsMiddle() bool {
	return strings.HasPrefix(string(g), "中")
}

// Subject 科目
type Subject string

const (
	SubjectJapanese  Subject = "国語"
	SubjectArith     Subject = "算数"
	SubjectMath      Subject = "数学"
	SubjectEnglish   Subject = "英語"
	SubjectScience   Subject = "理科"
	SubjectSocial    Subject = "社会"
	SubjectOther     Subject = "その他"
	SubjectComposite Subject = "合本" // 疑似科目（季節タブ表示専用）
)

// SubjectOrder 科目の表示順（合本は季節タブでのみ末尾に追加される）
var SubjectOrder = []Subject{
	SubjectJapanese,
	SubjectArith,
	SubjectMath,
	SubjectEnglish,
	SubjectScience,
	SubjectSocial,
	SubjectOther,
}

// CoreMiddleSubjects 中学生の主要5科目（要確認判定・売上増見込の対象）
var CoreMiddleSubjects = []Subject{
	SubjectJapanese,
	SubjectMath,
	SubjectEnglish,
	SubjectScience,
	SubjectSocial,
}

// Season 季節（空文字は季節教材でない）
type Season string

const (
	SeasonNone   Season = ""
	SeasonSpring Season = "春期"
	SeasonSummer Season = "夏期"
	SeasonWinter Season = "冬期"
)

// Category 商品カテゴリ = タブ名（入試 > 季節 > 通年 の優先順で排他的に決まる）
type Category string

const (
	CategoryAnnual Category = "通年"
	CategorySpring Category = "春期"
	CategorySummer Category = "夏期"
	CategoryWinter Category = "冬期"
	CategoryExam   Category = "入試"
)

// TabOrder タブの表示順
var TabOrder = []Category{
	CategoryAnnual,
	CategorySpring,
	CategorySummer,
	CategoryWinter,
	CategoryExam,
}

// IsSeasonal 季節タブかどうか
func (c Category) IsSeasonal() bool {
	return c == CategorySpring || c == CategorySummer || c == CategoryWinter
}

// ValidTab 認識されるタブ名かどうか
func ValidTab(c Category) bool {
	for _, t := range TabOrder {
		if t == c {
			return true
		}
	}
	return false
}
