package application

import (
	"context"
	"testing"

	"hexclan/contexts/event-management/role-assignment-service/adapters/memory"
)

func TestSeedDemoDataCreatesUserAndTenant(t *testing.T) {
	store := memory.NewStore()
	seeder := SeedService{
		Store:       store,
		IDGenerator: store,
	}

	result, err := seeder.SeedDemoData(context.Background())
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if !result.UserCreated || !result.TenantCreated {
		t.Fatalf("expected fresh seed to create both rows, got %+v", result)
	}

	user, err := store.GetUserByEmail(context.Background(), "demo@hexclan.test")
	if err != nil {
		t.Fatalf("demo user lookup failed: %v", err)
	}
	if user.Name != "Demo User" {
		t.Fatalf("unexpected demo user %+v", user)
	}
}

func TestSeedDemoDataIsIdempotent(t *testing.T) {
	store := memory.NewStore()
	seeder := SeedService{
		Store:       store,
		IDGenerator: store,
	}

	if _, err := seeder.SeedDemoData(context.Background()); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	result, err := seeder.SeedDemoData(context.Background())
	if err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if result.UserCreated || result.TenantCreated {
		t.Fatalf("re-run must not create rows, got %+v", result)
	}
}

func TestSeedDemoDataUsesConfiguredDomain(t *testing.T) {
	store := memory.NewStore()
	seeder := SeedService{
		Store:        store,
		IDGenerator:  store,
		TenantDomain: "staging.hexclan.test",
	}

	result, err := seeder.SeedDemoData(context.Background())
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if !result.TenantCreated {
		t.Fatalf("expected tenant to be created, got %+v", result)
	}
}
