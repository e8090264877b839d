package summary

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps generated summaries. Records are never updated or deleted.
type Store interface {
	Create(ctx context.Context, rec NewRecord) Record
	Get(ctx context.Context, id string) (Record, bool)
}

// MemoryStore implements Store with a process-lifetime map.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
	now     func() time.Time
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]Record),
		now:     time.Now,
	}
}

// Create assigns an id and creation time and stores the record.
func (s *MemoryStore) Create(_ context.Context, rec NewRecord) Record {
	record := Record{
		ID:                uuid.NewString(),
		Transcript:        rec.Transcript,
		CustomInstruction: copyString(rec.CustomInstruction),
		Summary:           rec.Summary,
		CreatedAt:         s.now().UTC(),
	}

	s.mu.Lock()
	s.records[record.ID] = record
	s.mu.Unlock()

	return cloneRecord(record)
}

// Get looks up a record by id.
func (s *MemoryStore) Get(_ context.Context, id string) (Record, bool) {
	s.mu.RLock()
	record, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return Record{}, false
	}
	return cloneRecord(record), true
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// cloneRecord keeps callers from mutating the stored instruction through the pointer.
func cloneRecord(r Record) Record {
	r.CustomInstruction = copyString(r.CustomInstruction)
	return r
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
