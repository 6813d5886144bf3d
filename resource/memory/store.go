package memory

import (
	"sort"
	"sync"

	C "github.com/Carehealth1/jcindex/constant"
	"github.com/Carehealth1/jcindex/model"
)

// Store プロセス内に計測履歴を保持するストア。
// 複数利用者からの書き込みを直列化するためRWMutexで保護する。
type Store struct {
	mu       sync.RWMutex
	patients map[string][]*model.Measurement
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.patients == nil {
		s.patients = map[string][]*model.Measurement{}
	}

	return nil
}

// 患者の履歴に計測を追加する。リスクレベルは保存時に算出され、
// 呼び出し側が設定した値は上書きされる。
func (s *Store) Save(m *model.Measurement) (*model.Measurement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := *m
	record.RiskLevel = C.ClassifyRisk(record.JCIndex)

	s.patients[record.PatientId] = append(s.patients[record.PatientId], &record)

	return &record, nil
}

// 患者の全計測を計測日昇順で取得する。同日の計測は登録順を保つ。
func (s *Store) LoadHistory(patientId string) ([]*model.Measurement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.patients[patientId]

	records := make([]*model.Measurement, len(history))
	copy(records, history)

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ScanDate.Before(records[j].ScanDate)
	})

	return records, nil
}
