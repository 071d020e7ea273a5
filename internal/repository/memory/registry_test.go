package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"ridedemo/internal/domain/entities"
)

func TestDriverRegistryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	reg := NewDriverRegistry()

	alice := entities.NewDriver("D001", "Alice Smith", 4.8)
	if err := reg.Create(ctx, alice); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := reg.GetByID(ctx, "D001")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != alice {
		t.Error("GetByID returned a different driver instance")
	}
}

func TestDriverRegistryMissingID(t *testing.T) {
	reg := NewDriverRegistry()
	if _, err := reg.GetByID(context.Background(), "D999"); !errors.Is(err, ErrDriverNotFound) {
		t.Errorf("GetByID on missing id = %v, expected ErrDriverNotFound", err)
	}
}

func TestDriverRegistryAllPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	reg := NewDriverRegistry()

	const n = 5
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("D%03d", i)
		if err := reg.Create(ctx, entities.NewDriver(id, "Driver "+id, 4.0)); err != nil {
			t.Fatalf("Create %s: %v", id, err)
		}
	}

	drivers, err := reg.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(drivers) != n {
		t.Fatalf("All returned %d drivers, expected %d", len(drivers), n)
	}
	for i, d := range drivers {
		expected := fmt.Sprintf("D%03d", i)
		if d.DriverID() != expected {
			t.Errorf("drivers[%d].DriverID() = %q, expected %q", i, d.DriverID(), expected)
		}
	}
}

func TestDriverRegistryCreateOverwritesSameID(t *testing.T) {
	ctx := context.Background()
	reg := NewDriverRegistry()

	if err := reg.Create(ctx, entities.NewDriver("D001", "First", 4.0)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := reg.Create(ctx, entities.NewDriver("D001", "Second", 4.5)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	drivers, err := reg.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(drivers) != 1 {
		t.Fatalf("All returned %d drivers, expected 1", len(drivers))
	}
	if drivers[0].Name() != "Second" {
		t.Errorf("driver name = %q, expected the later registration to win", drivers[0].Name())
	}
}

func TestRiderRegistry(t *testing.T) {
	ctx := context.Background()
	reg := NewRiderRegistry()

	if _, err := reg.GetByID(ctx, "R999"); !errors.Is(err, ErrRiderNotFound) {
		t.Errorf("GetByID on missing id = %v, expected ErrRiderNotFound", err)
	}

	sandesh := entities.NewRider("R001", "Sandesh Shrestha")
	if err := reg.Create(ctx, sandesh); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := reg.Create(ctx, entities.NewRider("R002", "Second Rider")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := reg.GetByID(ctx, "R001")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != sandesh {
		t.Error("GetByID returned a different rider instance")
	}

	riders, err := reg.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(riders) != 2 || riders[0].RiderID() != "R001" || riders[1].RiderID() != "R002" {
		t.Errorf("All returned wrong listing: %d riders", len(riders))
	}
}
