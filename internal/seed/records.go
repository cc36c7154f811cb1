// Package seed serves the read-only patient records the dashboard starts with.
package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/goodnatureofminers/arogya-ledger-backend/internal/model"
	"go.uber.org/zap"
)

var ErrRecordNotFound = errors.New("record not found")

// Store is an immutable, in-memory set of patient records.
type Store struct {
	records []model.PatientRecord
	index   map[string]int
}

// NewStore indexes records by RecordID. The first record wins on duplicates.
func NewStore(records []model.PatientRecord) *Store {
	s := &Store{
		records: make([]model.PatientRecord, 0, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for _, r := range records {
		if _, ok := s.index[r.RecordID]; ok {
			continue
		}
		s.index[r.RecordID] = len(s.records)
		s.records = append(s.records, r)
	}
	return s
}

// Load reads a JSON array of records from path. An empty path or a missing
// file yields an empty store; malformed content is an error.
func Load(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if path == "" {
		logger.Warn("no records file configured, serving no seed records")
		return NewStore(nil), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("records file not found, serving no seed records", zap.String("path", path))
			return NewStore(nil), nil
		}
		return nil, fmt.Errorf("read records file %s: %w", path, err)
	}

	var records []model.PatientRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode records file %s: %w", path, err)
	}

	s := NewStore(records)
	if dup := len(records) - s.Len(); dup > 0 {
		logger.Warn("duplicate record ids ignored", zap.Int("count", dup))
	}
	logger.Info("seed records loaded", zap.String("path", path), zap.Int("count", s.Len()))
	return s, nil
}

// List returns a copy of all records in file order.
func (s *Store) List() []model.PatientRecord {
	out := make([]model.PatientRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Get(recordID string) (model.PatientRecord, error) {
	i, ok := s.index[recordID]
	if !ok {
		return model.PatientRecord{}, fmt.Errorf("%w: %s", ErrRecordNotFound, recordID)
	}
	return s.records[i], nil
}

func (s *Store) Len() int {
	return len(s.records)
}
