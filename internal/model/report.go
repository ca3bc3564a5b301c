package model

import "time"

// ProductEntry 商品別の集計エントリ
type ProductEntry struct {
	ProductName     string    `json:"productName"`
	TotalQuantity   int       `json:"totalQuantity"`
	PeakDayQuantity int       `json:"peakDayQuantity"`
	PeakDayDate     time.Time `json:"peakDayDate"`
	IsBulk          bool      `json:"isBulk"`          // 最大単日冊数が大口基準以上
	IsLowEmphasis   bool      `json:"isLowEmphasis"`   // 科目合計が学年最大科目の半分以下
}

// SubjectSection 科目別セクション
type SubjectSection struct {
	Subject        Subject        `json:"subject"`
	IsComposite    bool           `json:"isComposite"` // 合本疑似科目（季節タブのみ）
	Products       []ProductEntry `json:"products"`
	TotalQuantity  int            `json:"totalQuantity"`
	NeedsAttention bool           `json:"needsAttention"` // 中学主要5科目で注文ゼロ
}

// GradeSection 学年別セクション
type GradeSection struct {
	Grade           Grade            `json:"grade"`
	Subjects        []SubjectSection `json:"subjects,omitempty"`
	Products        []ProductEntry   `json:"products,omitempty"` // 高校のみ（科目分けなし・冊数降順）
	MaxSubjectTotal int              `json:"maxSubjectTotal"`
	NeedsAttention  bool             `json:"needsAttention"` // 注文実績なし
}

// TabReport 1塾・1タブ分のレポート
type TabReport struct {
	SchoolName       string         `json:"schoolName"`
	Tab              Category       `json:"tab"`
	Grades           []GradeSection `json:"grades"`
	AnnualTotal      int            `json:"annualTotal"`      // 塾全体の年間冊数（全タブ共通）
	RevenuePotential int            `json:"revenuePotential"` // 通年タブのみ、それ以外は常に0
	BulkThreshold    int            `json:"bulkThreshold"`
	NeedsAttention   bool           `json:"needsAttention"` // タブ全体で注文実績なし
}
