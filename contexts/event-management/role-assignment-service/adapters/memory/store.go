package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"hexclan/contexts/event-management/role-assignment-service/domain/entities"
	domainerrors "hexclan/contexts/event-management/role-assignment-service/domain/errors"
	"hexclan/contexts/event-management/role-assignment-service/ports"

	"github.com/google/uuid"
)

// Store is an in-memory adapter implementing every module port. It is
// intended for tests and local development wiring.
type Store struct {
	mu sync.RWMutex

	events        map[string]entities.Event
	users         map[string]entities.User
	memberships   map[string]entities.Membership
	tenants       map[string]entities.Tenant
	tenantDomains map[string]entities.TenantDomain
}

func NewStore() *Store {
	return &Store{
		events:        make(map[string]entities.Event),
		users:         make(map[string]entities.User),
		memberships:   make(map[string]entities.Membership),
		tenants:       make(map[string]entities.Tenant),
		tenantDomains: make(map[string]entities.TenantDomain),
	}
}

// AddEvent seeds an event row for tests.
func (s *Store) AddEvent(event entities.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.EventID] = event
}

// AddUser seeds a user row for tests.
func (s *Store) AddUser(user entities.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.UserID] = user
}

func (s *Store) GetEvent(_ context.Context, eventID string) (entities.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[eventID]
	if !ok {
		return entities.Event{}, domainerrors.ErrEventNotFound
	}
	return event, nil
}

func (s *Store) GetUser(_ context.Context, userID string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return entities.User{}, domainerrors.ErrUserNotFound
}

func (s *Store) CreateMembership(_ context.Context, membership entities.Membership) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey(membership.EventID, membership.UserID)
	if _, exists := s.memberships[key]; exists {
		return domainerrors.ErrRoleAlreadyAssigned
	}
	s.memberships[key] = membership
	return nil
}

func (s *Store) UpdateMembershipRole(_ context.Context, eventID string, userID string, role string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey(eventID, userID)
	membership, exists := s.memberships[key]
	if !exists {
		return domainerrors.ErrMembershipNotFound
	}
	membership.Role = role
	membership.UpdatedAt = now
	s.memberships[key] = membership
	return nil
}

func (s *Store) DeleteMembership(_ context.Context, eventID string, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.memberships, pairKey(eventID, userID))
	return nil
}

func (s *Store) ListMembers(_ context.Context, eventID string) ([]entities.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]entities.Membership, 0)
	for _, membership := range s.memberships {
		if membership.EventID == eventID {
			rows = append(rows, membership)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].UserID < rows[j].UserID
		}
		return rows[i].CreatedAt.Before(rows[j].CreatedAt)
	})

	members := make([]entities.Member, 0, len(rows))
	for _, membership := range rows {
		member := entities.Member{
			UserID: membership.UserID,
			Role:   membership.Role,
		}
		if user, ok := s.users[membership.UserID]; ok {
			member.Email = user.Email
			member.Name = user.Name
		}
		members = append(members, member)
	}
	return members, nil
}

func (s *Store) EnsureDemoData(_ context.Context, input ports.SeedInput) (ports.SeedResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out ports.SeedResult

	userExists := false
	for _, user := range s.users {
		if user.Email == input.User.Email {
			userExists = true
			break
		}
	}
	if !userExists {
		s.users[input.User.UserID] = input.User
		out.UserCreated = true
	}

	if _, exists := s.tenantDomains[input.TenantDomain.Domain]; !exists {
		s.tenants[input.Tenant.TenantID] = input.Tenant
		s.tenantDomains[input.TenantDomain.Domain] = input.TenantDomain
		out.TenantCreated = true
	}
	return out, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func pairKey(eventID string, userID string) string {
	return eventID + "|" + userID
}
