// Package repository defines the registries the simulation uses to track
// its generated fleet. Ride histories are not stored here — each ride is
// owned by exactly one driver or rider entity.
package repository

import (
	"context"

	"ridedemo/internal/domain/entities"
)

type DriverRegistry interface {
	Create(ctx context.Context, driver *entities.Driver) error
	GetByID(ctx context.Context, id string) (*entities.Driver, error)
	All(ctx context.Context) ([]*entities.Driver, error)
}

type RiderRegistry interface {
	Create(ctx context.Context, rider *entities.Rider) error
	GetByID(ctx context.Context, id string) (*entities.Rider, error)
	All(ctx context.Context) ([]*entities.Rider, error)
}
