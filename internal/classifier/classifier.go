package classifier

import (
	"sync"

	"github.com/yagi-creator/educational-materials-analyzer/internal/model"
)

// Classify 商品名を総合分類する
// 正規化は1回だけ行い、学年 → 科目（学年補正あり）→ 季節/入試 → 合本
// の順に抽出する。カテゴリは 入試 > 季節 > 通年 の優先順で排他的に決まる。
// 商品名が空・欠損なら既定分類を返す。いかなる入力でも失敗しない
func Classify(productName string) model.Classification {
	normalized := Normalize(productName)
	if normalized == "" {
		return model.DefaultClassification()
	}

	grade := ExtractGrade(normalized)
	subject := ExtractSubject(normalized, grade)
	season, isExam := ExtractSeasonExam(normalized)
	isComposite := IsComposite(normalized)

	category := model.CategoryAnnual
	if isExam {
		category = model.CategoryExam
	} else if season != model.SeasonNone {
		category = model.Category(season)
	}

	return model.Classification{
		Grade:       grade,
		Subject:     subject,
		Season:      season,
		IsExam:      isExam,
		IsComposite: isComposite,
		Category:    category,
	}
}

// Classifier 商品名ごとの分類キャッシュ付き分類器
// 分類は商品名文字列の純関数なので、同一商品名の再分類を省ける
type Classifier struct {
	mu    sync.RWMutex
	cache map[string]model.Classification
}

// NewClassifier 分類器を生成する
func NewClassifier() *Classifier {
	return &Classifier{
		cache: make(map[string]model.Classification),
	}
}

// Classify キャッシュを参照しつつ商品名を分類する
func (c *Classifier) Classify(productName string) model.Classification {
	c.mu.RLock()
	cached, ok := c.cache[productName]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	result := Classify(productName)

	c.mu.Lock()
	c.cache[productName] = result
	c.mu.Unlock()

	return result
}

// CacheSize キャッシュ済みの商品名数
func (c *Classifier) CacheSize() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}
