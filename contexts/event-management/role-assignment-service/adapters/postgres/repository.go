package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"hexclan/contexts/event-management/role-assignment-service/domain/entities"
	domainerrors "hexclan/contexts/event-management/role-assignment-service/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) GetEvent(ctx context.Context, eventID string) (entities.Event, error) {
	var row eventModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(eventID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Event{}, domainerrors.ErrEventNotFound
		}
		return entities.Event{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetUser(ctx context.Context, userID string) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.TrimSpace(email)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) CreateMembership(ctx context.Context, membership entities.Membership) error {
	row := eventUserModelFromEntity(membership)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrRoleAlreadyAssigned
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateMembershipRole(ctx context.Context, eventID string, userID string, role string, now time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&eventUserModel{}).
		Where("event_id = ? AND user_id = ?", strings.TrimSpace(eventID), strings.TrimSpace(userID)).
		Updates(map[string]any{
			"role":       role,
			"updated_at": now.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrMembershipNotFound
	}
	return nil
}

// DeleteMembership is idempotent: zero rows affected is not an error.
func (r *Repository) DeleteMembership(ctx context.Context, eventID string, userID string) error {
	return r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", strings.TrimSpace(eventID), strings.TrimSpace(userID)).
		Delete(&eventUserModel{}).
		Error
}

func (r *Repository) ListMembers(ctx context.Context, eventID string) ([]entities.Member, error) {
	var rows []memberRow
	err := r.db.WithContext(ctx).
		Table("event_users").
		Select("event_users.user_id AS user_id, users.email AS email, users.name AS name, event_users.role AS role").
		Joins("JOIN users ON users.id = event_users.user_id").
		Where("event_users.event_id = ?", strings.TrimSpace(eventID)).
		Order("event_users.created_at ASC, event_users.user_id ASC").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}

	members := make([]entities.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, entities.Member{
			UserID: row.UserID,
			Email:  row.Email,
			Name:   row.Name,
			Role:   row.Role,
		})
	}
	return members, nil
}

type eventModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	TenantID  string    `gorm:"column:tenant_id"`
	Title     string    `gorm:"column:title"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (eventModel) TableName() string {
	return "events"
}

func (m eventModel) toEntity() entities.Event {
	return entities.Event{
		EventID:   m.ID,
		TenantID:  m.TenantID,
		Title:     m.Title,
		CreatedAt: m.CreatedAt,
	}
}

type userModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Email     string    `gorm:"column:email"`
	Name      string    `gorm:"column:name"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string {
	return "users"
}

func (m userModel) toEntity() entities.User {
	return entities.User{
		UserID:    m.ID,
		Email:     m.Email,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

type eventUserModel struct {
	EventID   string    `gorm:"column:event_id;primaryKey"`
	UserID    string    `gorm:"column:user_id;primaryKey"`
	Role      string    `gorm:"column:role"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (eventUserModel) TableName() string {
	return "event_users"
}

func eventUserModelFromEntity(item entities.Membership) eventUserModel {
	return eventUserModel{
		EventID:   strings.TrimSpace(item.EventID),
		UserID:    strings.TrimSpace(item.UserID),
		Role:      item.Role,
		CreatedAt: item.CreatedAt.UTC(),
		UpdatedAt: item.UpdatedAt.UTC(),
	}
}

type memberRow struct {
	UserID string `gorm:"column:user_id"`
	Email  string `gorm:"column:email"`
	Name   string `gorm:"column:name"`
	Role   string `gorm:"column:role"`
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
