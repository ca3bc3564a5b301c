package model

import "time"

// OrderRecord 検証済みの注文1行
// 保持される行は必ず 注文日あり・塾名非空・商品名非空・冊数>0 を満たす
type OrderRecord struct {
	OrderDate   time.Time `json:"orderDate"`
	SchoolName  string    `json:"schoolName"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
}

// Classification 商品名の分類結果（商品名文字列の純関数）
type Classification struct {
	Grade       Grade    `json:"grade"`
	Subject     Subject  `json:"subject"`
	Season      Season   `json:"season"`
	IsExam      bool     `json:"isExam"`
	IsComposite bool     `json:"isComposite"`
	Category    Category `json:"category"`
}

// DefaultClassification 商品名が空・欠損の場合の既定分類
func DefaultClassification() Classification {
	return Classification{
		Grade:    GradeUnknown,
		Subject:  SubjectOther,
		Season:   SeasonNone,
		Category: CategoryAnnual,
	}
}

// ClassifiedRecord 注文行と分類の結合
type ClassifiedRecord struct {
	OrderRecord
	Classification
}
