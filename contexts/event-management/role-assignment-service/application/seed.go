package application

import (
	"context"
	"log/slog"
	"strings"

	"hexclan/contexts/event-management/role-assignment-service/domain/entities"
	"hexclan/contexts/event-management/role-assignment-service/ports"
)

const (
	demoUserEmail     = "demo@hexclan.test"
	demoUserName      = "Demo User"
	demoTenantName    = "Demo Tenant"
	defaultSeedDomain = "demo.hexclan.test"
)

// SeedService provisions the demo user and demo tenant domain. It is the only
// writer of tenant rows in this module and is safe to re-run.
type SeedService struct {
	Store        ports.SeedStore
	IDGenerator  ports.IDGenerator
	Logger       *slog.Logger
	TenantDomain string
}

func (s SeedService) SeedDemoData(ctx context.Context) (ports.SeedResult, error) {
	logger := resolveLogger(s.Logger)

	userID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return ports.SeedResult{}, err
	}
	tenantID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return ports.SeedResult{}, err
	}
	domainID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return ports.SeedResult{}, err
	}

	result, err := s.Store.EnsureDemoData(ctx, ports.SeedInput{
		User: entities.User{
			UserID: userID,
			Email:  demoUserEmail,
			Name:   demoUserName,
		},
		Tenant: entities.Tenant{
			TenantID: tenantID,
			Name:     demoTenantName,
		},
		TenantDomain: entities.TenantDomain{
			DomainID: domainID,
			TenantID: tenantID,
			Domain:   s.seedDomain(),
		},
	})
	if err != nil {
		logger.Error("demo seed failed",
			"event", "demo_seed_failed",
			"module", "event-management/role-assignment-service",
			"layer", "application",
			"error", err.Error(),
		)
		return ports.SeedResult{}, err
	}

	logger.Info("demo seed completed",
		"event", "demo_seed_completed",
		"module", "event-management/role-assignment-service",
		"layer", "application",
		"tenant_domain", s.seedDomain(),
		"user_created", result.UserCreated,
		"tenant_created", result.TenantCreated,
	)
	return result, nil
}

func (s SeedService) seedDomain() string {
	if strings.TrimSpace(s.TenantDomain) != "" {
		return strings.TrimSpace(s.TenantDomain)
	}
	return defaultSeedDomain
}
