package memory

import (
	"context"
	"errors"
	"sync"

	"ridedemo/internal/domain/entities"
)

var ErrRiderNotFound = errors.New("rider not found")

// RiderRegistry is the rider counterpart of DriverRegistry.
type RiderRegistry struct {
	mu     sync.RWMutex
	riders map[string]*entities.Rider
	order  []string
}

func NewRiderRegistry() *RiderRegistry {
	return &RiderRegistry{
		riders: make(map[string]*entities.Rider),
	}
}

func (r *RiderRegistry) Create(ctx context.Context, rider *entities.Rider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.riders[rider.RiderID()]; !exists {
		r.order = append(r.order, rider.RiderID())
	}
	r.riders[rider.RiderID()] = rider
	return nil
}

func (r *RiderRegistry) GetByID(ctx context.Context, id string) (*entities.Rider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rider, exists := r.riders[id]
	if !exists {
		return nil, ErrRiderNotFound
	}
	return rider, nil
}

func (r *RiderRegistry) All(ctx context.Context) ([]*entities.Rider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	riders := make([]*entities.Rider, 0, len(r.order))
	for _, id := range r.order {
		riders = append(riders, r.riders[id])
	}
	return riders, nil
}
