package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"hexclan/contexts/event-management/role-assignment-service/domain/entities"
	domainerrors "hexclan/contexts/event-management/role-assignment-service/domain/errors"
	"hexclan/contexts/event-management/role-assignment-service/ports"
)

const maxEmailLength = 255

// AttachRoleCommand contains transport-agnostic input for creating a pivot row.
// The target user is addressed by unique email, not by id.
type AttachRoleCommand struct {
	EventID string
	Email   string
	Role    string
}

// UpdateRoleCommand overwrites the role on an existing pivot row.
type UpdateRoleCommand struct {
	EventID string
	UserID  string
	Role    string
}

// DetachRoleCommand removes the pivot row for the pair if one exists.
type DetachRoleCommand struct {
	EventID string
	UserID  string
}

// Service coordinates role assignment on the event_users pivot. Every
// operation validates input, resolves referenced entities explicitly, applies
// a single mutation, and reads the owning event's members view back.
type Service struct {
	Events      ports.EventDirectory
	Users       ports.UserDirectory
	Memberships ports.MembershipRepository
	Clock       ports.Clock
	Logger      *slog.Logger
}

// AttachRole creates the Membership for (event, user-by-email) with the given
// role. A pair that already has a row conflicts; attach never upserts.
func (s Service) AttachRole(ctx context.Context, cmd AttachRoleCommand) ([]entities.Member, error) {
	logger := resolveLogger(s.Logger)

	if err := validateAttach(cmd); err != nil {
		logger.Warn("attach role rejected",
			"event", "role_attach_rejected",
			"module", "event-management/role-assignment-service",
			"layer", "application",
			"event_id", cmd.EventID,
		)
		return nil, err
	}

	event, err := s.Events.GetEvent(ctx, strings.TrimSpace(cmd.EventID))
	if err != nil {
		return nil, err
	}
	user, err := s.Users.GetUserByEmail(ctx, strings.TrimSpace(cmd.Email))
	if err != nil {
		return nil, err
	}

	now := s.now()
	err = s.Memberships.CreateMembership(ctx, entities.Membership{
		EventID:   event.EventID,
		UserID:    user.UserID,
		Role:      cmd.Role,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		logger.Warn("attach role write failed",
			"event", "role_attach_write_failed",
			"module", "event-management/role-assignment-service",
			"layer", "application",
			"event_id", event.EventID,
			"user_id", user.UserID,
			"error", err.Error(),
		)
		return nil, err
	}

	logger.Info("role attached",
		"event", "role_attached",
		"module", "event-management/role-assignment-service",
		"layer", "application",
		"event_id", event.EventID,
		"user_id", user.UserID,
		"role", cmd.Role,
	)
	return s.Memberships.ListMembers(ctx, event.EventID)
}

// UpdateRole sets a new role on the existing Membership for the pair. The pair
// identity is immutable; a missing Membership is reported, never created.
func (s Service) UpdateRole(ctx context.Context, cmd UpdateRoleCommand) ([]entities.Member, error) {
	logger := resolveLogger(s.Logger)

	if strings.TrimSpace(cmd.EventID) == "" || strings.TrimSpace(cmd.UserID) == "" {
		return nil, domainerrors.ErrValidationFailed
	}
	if !ports.IsValidRole(cmd.Role) {
		return nil, domainerrors.ErrValidationFailed
	}

	event, err := s.Events.GetEvent(ctx, strings.TrimSpace(cmd.EventID))
	if err != nil {
		return nil, err
	}
	user, err := s.Users.GetUser(ctx, strings.TrimSpace(cmd.UserID))
	if err != nil {
		return nil, err
	}

	if err := s.Memberships.UpdateMembershipRole(ctx, event.EventID, user.UserID, cmd.Role, s.now()); err != nil {
		return nil, err
	}

	logger.Info("role updated",
		"event", "role_updated",
		"module", "event-management/role-assignment-service",
		"layer", "application",
		"event_id", event.EventID,
		"user_id", user.UserID,
		"role", cmd.Role,
	)
	return s.Memberships.ListMembers(ctx, event.EventID)
}

// DetachRole removes the Membership for the pair. Removing an absent pair is
// a no-op; only the event and user references themselves must exist.
func (s Service) DetachRole(ctx context.Context, cmd DetachRoleCommand) error {
	logger := resolveLogger(s.Logger)

	if strings.TrimSpace(cmd.EventID) == "" || strings.TrimSpace(cmd.UserID) == "" {
		return domainerrors.ErrValidationFailed
	}

	event, err := s.Events.GetEvent(ctx, strings.TrimSpace(cmd.EventID))
	if err != nil {
		return err
	}
	user, err := s.Users.GetUser(ctx, strings.TrimSpace(cmd.UserID))
	if err != nil {
		return err
	}

	if err := s.Memberships.DeleteMembership(ctx, event.EventID, user.UserID); err != nil {
		return err
	}

	logger.Info("role detached",
		"event", "role_detached",
		"module", "event-management/role-assignment-service",
		"layer", "application",
		"event_id", event.EventID,
		"user_id", user.UserID,
	)
	return nil
}

// Members returns the members view of an existing event.
func (s Service) Members(ctx context.Context, eventID string) ([]entities.Member, error) {
	event, err := s.Events.GetEvent(ctx, strings.TrimSpace(eventID))
	if err != nil {
		return nil, err
	}
	return s.Memberships.ListMembers(ctx, event.EventID)
}

func validateAttach(cmd AttachRoleCommand) error {
	if strings.TrimSpace(cmd.EventID) == "" {
		return domainerrors.ErrValidationFailed
	}
	email := strings.TrimSpace(cmd.Email)
	if email == "" || len(email) > maxEmailLength {
		return domainerrors.ErrValidationFailed
	}
	if !ports.IsValidRole(cmd.Role) {
		return domainerrors.ErrValidationFailed
	}
	return nil
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
