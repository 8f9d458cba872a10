package memory

import (
	"context"
	"sync"

	"github.com/incident-intake/internal/domain/repository"
)

type SequenceRepository struct {
	mu       sync.Mutex
	counters map[string]int64
}

var _ repository.SequenceRepository = (*SequenceRepository)(nil)

func NewSequenceRepository() *SequenceRepository {
	return &SequenceRepository{counters: make(map[string]int64)}
}

func (r *SequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counters[name]++
	return r.counters[name], nil
}

func (r *SequenceRepository) Seed(ctx context.Context, name string, floor int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.counters[name] < floor {
		r.counters[name] = floor
	}
	return nil
}
