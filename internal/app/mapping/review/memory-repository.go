package review_repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/init-pkg/column-mapper/domain/app"
	"gorm.io/gorm"
)

// MemoryRepository is used when the database is disabled. Entries are stored
// as JSON so callers never share slices with the store.
type MemoryRepository struct {
	mu sync.RWMutex
	m  map[string][]byte
}

var _ app.ReviewRepository = &MemoryRepository{}

func NewMemory() *MemoryRepository {
	return &MemoryRepository{m: make(map[string][]byte)}
}

func (r *MemoryRepository) Save(_ context.Context, m *app.CommittedMapping) error {
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal committed mapping: %w", err)
	}
	r.mu.Lock()
	r.m[m.UploadID] = b
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepository) Find(_ context.Context, uploadID string) (*app.CommittedMapping, error) {
	r.mu.RLock()
	b, ok := r.m[uploadID]
	r.mu.RUnlock()
	if !ok {
		return nil, app.ErrCommitNotFound
	}

	var m app.CommittedMapping
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decode committed mapping: %w", err)
	}
	return &m, nil
}

// New picks the gorm repository when a database is configured.
func New(db *gorm.DB) app.ReviewRepository {
	if db == nil {
		return NewMemory()
	}
	return NewGorm(db)
}
