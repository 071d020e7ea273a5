package memory

import (
	"context"
	"errors"
	"sync"

	"ridedemo/internal/domain/entities"
)

var ErrDriverNotFound = errors.New("driver not found")

// DriverRegistry is an in-memory driver store. It remembers insertion
// order so All returns a deterministic listing.
type DriverRegistry struct {
	mu      sync.RWMutex
	drivers map[string]*entities.Driver
	order   []string
}

func NewDriverRegistry() *DriverRegistry {
	return &DriverRegistry{
		drivers: make(map[string]*entities.Driver),
	}
}

func (r *DriverRegistry) Create(ctx context.Context, driver *entities.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.drivers[driver.DriverID()]; !exists {
		r.order = append(r.order, driver.DriverID())
	}
	r.drivers[driver.DriverID()] = driver
	return nil
}

func (r *DriverRegistry) GetByID(ctx context.Context, id string) (*entities.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	driver, exists := r.drivers[id]
	if !exists {
		return nil, ErrDriverNotFound
	}
	return driver, nil
}

func (r *DriverRegistry) All(ctx context.Context) ([]*entities.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	drivers := make([]*entities.Driver, 0, len(r.order))
	for _, id := range r.order {
		drivers = append(drivers, r.drivers[id])
	}
	return drivers, nil
}
