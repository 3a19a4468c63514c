package application

import (
	"context"
	"errors"
	"testing"

	"hexclan/contexts/event-management/role-assignment-service/adapters/memory"
	"hexclan/contexts/event-management/role-assignment-service/domain/entities"
	domainerrors "hexclan/contexts/event-management/role-assignment-service/domain/errors"
)

func newTestService() (Service, *memory.Store) {
	store := memory.NewStore()
	store.AddEvent(entities.Event{EventID: "event_1", TenantID: "tenant_1", Title: "Launch Party"})
	store.AddUser(entities.User{UserID: "user_a", Email: "a@x.com", Name: "Ann"})
	store.AddUser(entities.User{UserID: "user_b", Email: "b@x.com", Name: "Ben"})
	service := Service{
		Events:      store,
		Users:       store,
		Memberships: store,
		Clock:       store,
	}
	return service, store
}

func TestAttachRoleAddsMember(t *testing.T) {
	service, _ := newTestService()

	members, err := service.AttachRole(context.Background(), AttachRoleCommand{
		EventID: "event_1",
		Email:   "a@x.com",
		Role:    "seller",
	})
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	if len(members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(members))
	}
	if members[0].Email != "a@x.com" || members[0].Role != "seller" {
		t.Fatalf("unexpected member %+v", members[0])
	}
}

func TestAttachRoleRejectsUnknownRole(t *testing.T) {
	service, _ := newTestService()

	_, err := service.AttachRole(context.Background(), AttachRoleCommand{
		EventID: "event_1",
		Email:   "a@x.com",
		Role:    "admin",
	})
	if !errors.Is(err, domainerrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure, got %v", err)
	}

	members, err := service.Members(context.Background(), "event_1")
	if err != nil {
		t.Fatalf("members failed: %v", err)
	}
	if len(members) != 0 {
		t.Fatalf("expected no members after rejected attach, got %d", len(members))
	}
}

func TestAttachRoleRejectsRoleCaseVariant(t *testing.T) {
	service, _ := newTestService()

	_, err := service.AttachRole(context.Background(), AttachRoleCommand{
		EventID: "event_1",
		Email:   "a@x.com",
		Role:    "Manager",
	})
	if !errors.Is(err, domainerrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure, got %v", err)
	}
}

func TestAttachRoleUnknownEmail(t *testing.T) {
	service, _ := newTestService()

	_, err := service.AttachRole(context.Background(), AttachRoleCommand{
		EventID: "event_1",
		Email:   "nobody@x.com",
		Role:    "seller",
	})
	if !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
}

func TestAttachRoleUnknownEvent(t *testing.T) {
	service, _ := newTestService()

	_, err := service.AttachRole(context.Background(), AttachRoleCommand{
		EventID: "event_missing",
		Email:   "a@x.com",
		Role:    "seller",
	})
	if !errors.Is(err, domainerrors.ErrEventNotFound) {
		t.Fatalf("expected event not found, got %v", err)
	}
}

func TestAttachRoleExistingPairConflicts(t *testing.T) {
	service, _ := newTestService()

	if _, err := service.AttachRole(context.Background(), AttachRoleCommand{
		EventID: "event_1",
		Email:   "a@x.com",
		Role:    "seller",
	}); err != nil {
		t.Fatalf("first attach failed: %v", err)
	}

	_, err := service.AttachRole(context.Background(), AttachRoleCommand{
		EventID: "event_1",
		Email:   "a@x.com",
		Role:    "manager",
	})
	if !errors.Is(err, domainerrors.ErrRoleAlreadyAssigned) {
		t.Fatalf("expected conflict, got %v", err)
	}

	members, err := service.Members(context.Background(), "event_1")
	if err != nil {
		t.Fatalf("members failed: %v", err)
	}
	if len(members) != 1 || members[0].Role != "seller" {
		t.Fatalf("expected original seller role to survive conflict, got %+v", members)
	}
}

func TestUpdateRoleOverwritesRoleOnly(t *testing.T) {
	service, _ := newTestService()

	if _, err := service.AttachRole(context.Background(), AttachRoleCommand{
		EventID: "event_1",
		Email:   "a@x.com",
		Role:    "seller",
	}); err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	members, err := service.UpdateRole(context.Background(), UpdateRoleCommand{
		EventID: "event_1",
		UserID:  "user_a",
		Role:    "manager",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(members))
	}
	if members[0].UserID != "user_a" || members[0].Role != "manager" {
		t.Fatalf("unexpected member after update %+v", members[0])
	}
}

func TestUpdateRoleMissingMembership(t *testing.T) {
	service, _ := newTestService()

	_, err := service.UpdateRole(context.Background(), UpdateRoleCommand{
		EventID: "event_1",
		UserID:  "user_a",
		Role:    "manager",
	})
	if !errors.Is(err, domainerrors.ErrMembershipNotFound) {
		t.Fatalf("expected membership not found, got %v", err)
	}

	members, err := service.Members(context.Background(), "event_1")
	if err != nil {
		t.Fatalf("members failed: %v", err)
	}
	if len(members) != 0 {
		t.Fatalf("update must never create a membership, got %+v", members)
	}
}

func TestUpdateRoleRejectsUnknownRole(t *testing.T) {
	service, _ := newTestService()

	_, err := service.UpdateRole(context.Background(), UpdateRoleCommand{
		EventID: "event_1",
		UserID:  "user_a",
		Role:    "admin",
	})
	if !errors.Is(err, domainerrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure, got %v", err)
	}
}

func TestDetachRoleRemovesMembership(t *testing.T) {
	service, _ := newTestService()

	if _, err := service.AttachRole(context.Background(), AttachRoleCommand{
		EventID: "event_1",
		Email:   "a@x.com",
		Role:    "seller",
	}); err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	if err := service.DetachRole(context.Background(), DetachRoleCommand{
		EventID: "event_1",
		UserID:  "user_a",
	}); err != nil {
		t.Fatalf("detach failed: %v", err)
	}

	members, err := service.Members(context.Background(), "event_1")
	if err != nil {
		t.Fatalf("members failed: %v", err)
	}
	if len(members) != 0 {
		t.Fatalf("expected no members after detach, got %+v", members)
	}
}

func TestDetachRoleMissingMembershipIsNoop(t *testing.T) {
	service, _ := newTestService()

	if err := service.DetachRole(context.Background(), DetachRoleCommand{
		EventID: "event_1",
		UserID:  "user_a",
	}); err != nil {
		t.Fatalf("detach of absent membership must not error, got %v", err)
	}
}

func TestDetachRoleUnknownUser(t *testing.T) {
	service, _ := newTestService()

	err := service.DetachRole(context.Background(), DetachRoleCommand{
		EventID: "event_1",
		UserID:  "user_missing",
	})
	if !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
}

func TestRoleLifecycle(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	members, err := service.AttachRole(ctx, AttachRoleCommand{EventID: "event_1", Email: "a@x.com", Role: "seller"})
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	if len(members) != 1 || members[0].Email != "a@x.com" || members[0].Role != "seller" {
		t.Fatalf("unexpected members after attach %+v", members)
	}

	members, err = service.UpdateRole(ctx, UpdateRoleCommand{EventID: "event_1", UserID: "user_a", Role: "manager"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(members) != 1 || members[0].Role != "manager" {
		t.Fatalf("unexpected members after update %+v", members)
	}

	if err := service.DetachRole(ctx, DetachRoleCommand{EventID: "event_1", UserID: "user_a"}); err != nil {
		t.Fatalf("detach failed: %v", err)
	}
	members, err = service.Members(ctx, "event_1")
	if err != nil {
		t.Fatalf("members failed: %v", err)
	}
	if len(members) != 0 {
		t.Fatalf("expected empty members view, got %+v", members)
	}
}

func TestMembersOrderIsStable(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	if _, err := service.AttachRole(ctx, AttachRoleCommand{EventID: "event_1", Email: "a@x.com", Role: "seller"}); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	if _, err := service.AttachRole(ctx, AttachRoleCommand{EventID: "event_1", Email: "b@x.com", Role: "manager"}); err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	members, err := service.Members(ctx, "event_1")
	if err != nil {
		t.Fatalf("members failed: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	if members[0].UserID != "user_a" || members[1].UserID != "user_b" {
		t.Fatalf("unexpected member order %+v", members)
	}
}
