package ports

import (
	"context"
	"time"

	"hexclan/contexts/event-management/role-assignment-service/domain/entities"
)

const (
	RoleManager = "manager"
	RoleSeller  = "seller"
)

// IsValidRole reports whether role is one of the two pivot role values.
// Matching is exact; case variants are rejected.
func IsValidRole(role string) bool {
	switch role {
	case RoleManager, RoleSeller:
		return true
	default:
		return false
	}
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// EventDirectory resolves events owned by the events collaborator.
type EventDirectory interface {
	GetEvent(ctx context.Context, eventID string) (entities.Event, error)
}

// UserDirectory resolves users owned by the users collaborator.
type UserDirectory interface {
	GetUser(ctx context.Context, userID string) (entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
}

// MembershipRepository mutates the event_users pivot keyed by the
// (event_id, user_id) pair and reads the members view back.
type MembershipRepository interface {
	CreateMembership(ctx context.Context, membership entities.Membership) error
	UpdateMembershipRole(ctx context.Context, eventID string, userID string, role string, now time.Time) error
	DeleteMembership(ctx context.Context, eventID string, userID string) error
	ListMembers(ctx context.Context, eventID string) ([]entities.Member, error)
}

// SeedInput carries the fixed demo rows the seeder provisions.
type SeedInput struct {
	User         entities.User
	Tenant       entities.Tenant
	TenantDomain entities.TenantDomain
}

// SeedResult reports which demo rows were actually inserted; a re-run against
// an already seeded store reports neither.
type SeedResult struct {
	UserCreated   bool
	TenantCreated bool
}

// SeedStore provisions demo data for fresh environments. Implementations must
// be idempotent: existing rows (keyed by unique email / unique domain) are
// left untouched.
type SeedStore interface {
	EnsureDemoData(ctx context.Context, input SeedInput) (SeedResult, error)
}
