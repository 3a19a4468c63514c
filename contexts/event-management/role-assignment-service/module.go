package roleassignment

import (
	"log/slog"

	httpadapter "hexclan/contexts/event-management/role-assignment-service/adapters/http"
	"hexclan/contexts/event-management/role-assignment-service/adapters/memory"
	"hexclan/contexts/event-management/role-assignment-service/application"
	"hexclan/contexts/event-management/role-assignment-service/ports"
)

// Module is the role-assignment composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Seeder  application.SeedService
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Events       ports.EventDirectory
	Users        ports.UserDirectory
	Memberships  ports.MembershipRepository
	SeedStore    ports.SeedStore
	Clock        ports.Clock
	IDGenerator  ports.IDGenerator
	TenantDomain string
	Logger       *slog.Logger
}

// NewModule wires the role-assignment service and transport handler using
// explicit ports.
func NewModule(deps Dependencies) Module {
	service := application.Service{
		Events:      deps.Events,
		Users:       deps.Users,
		Memberships: deps.Memberships,
		Clock:       deps.Clock,
		Logger:      deps.Logger,
	}
	seeder := application.SeedService{
		Store:        deps.SeedStore,
		IDGenerator:  deps.IDGenerator,
		TenantDomain: deps.TenantDomain,
		Logger:       deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Seeder: seeder,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Events:      store,
		Users:       store,
		Memberships: store,
		SeedStore:   store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
