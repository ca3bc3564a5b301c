// Package store はアップロードごとのデータセットを保持する
// プロセス内ストアを提供します。永続化は行いません。
package store

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/yagi-creator/educational-materials-analyzer/internal/ingest"
	"github.com/yagi-creator/educational-materials-analyzer/internal/model"
)

// DatasetStore データセットIDをキーとするメモリストア
type DatasetStore struct {
	mu       sync.RWMutex
	datasets map[string]*ingest.Dataset
}

// NewDatasetStore メモリストアを生成する
func NewDatasetStore() *DatasetStore {
	return &DatasetStore{
		datasets: make(map[string]*ingest.Dataset),
	}
}

// Put データセットを登録し、発行したIDを返す
func (s *DatasetStore) Put(ds *ingest.Dataset) string {
	id := uuid.New().String()

	s.mu.Lock()
	s.datasets[id] = ds
	s.mu.Unlock()

	return id
}

// Get データセットを取得する
func (s *DatasetStore) Get(id string) (*ingest.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ds, ok := s.datasets[id]
	if !ok {
		return nil, model.ErrDatasetNotFound
	}
	return ds, nil
}

// Count 保持しているデータセット数
func (s *DatasetStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.datasets)
}

// Schools データセット内の塾名一覧（重複排除・ソート済み）
// query が非空なら大文字小文字を無視した部分一致で絞り込む
func (s *DatasetStore) Schools(id, query string) ([]string, error) {
	ds, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var schools []string
	lowered := strings.ToLower(query)
	for _, r := range ds.Records {
		if seen[r.SchoolName] {
			continue
		}
		seen[r.SchoolName] = true
		if query != "" && !strings.Contains(strings.ToLower(r.SchoolName), lowered) {
			continue
		}
		schools = append(schools, r.SchoolName)
	}

	sort.Strings(schools)
	return schools, nil
}

// SchoolRecords 指定した塾のレコード（全カテゴリ）
func (s *DatasetStore) SchoolRecords(id, school string) ([]model.ClassifiedRecord, error) {
	ds, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	var records []model.ClassifiedRecord
	for _, r := range ds.Records {
		if r.SchoolName == school {
			records = append(records, r)
		}
	}
	return records, nil
}
