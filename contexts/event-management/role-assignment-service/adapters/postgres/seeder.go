package postgresadapter

import (
	"context"
	"errors"
	"strings"
	"time"

	"hexclan/contexts/event-management/role-assignment-service/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EnsureDemoData inserts the demo user and tenant domain if absent. The user
// is keyed by unique email, the tenant by its unique domain; re-runs leave
// existing rows untouched.
func (r *Repository) EnsureDemoData(ctx context.Context, input ports.SeedInput) (ports.SeedResult, error) {
	var out ports.SeedResult
	now := time.Now().UTC()

	userRow := userModel{
		ID:        strings.TrimSpace(input.User.UserID),
		Email:     strings.TrimSpace(input.User.Email),
		Name:      strings.TrimSpace(input.User.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(&userRow)
	if result.Error != nil {
		return out, result.Error
	}
	out.UserCreated = result.RowsAffected > 0

	var existing tenantDomainModel
	err := r.db.WithContext(ctx).
		Where("domain = ?", strings.TrimSpace(input.TenantDomain.Domain)).
		First(&existing).
		Error
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return out, err
	}

	tenantRow := tenantModel{
		ID:        strings.TrimSpace(input.Tenant.TenantID),
		Name:      strings.TrimSpace(input.Tenant.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.db.WithContext(ctx).Create(&tenantRow).Error; err != nil {
		return out, err
	}

	domainRow := tenantDomainModel{
		ID:        strings.TrimSpace(input.TenantDomain.DomainID),
		TenantID:  tenantRow.ID,
		Domain:    strings.TrimSpace(input.TenantDomain.Domain),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.db.WithContext(ctx).Create(&domainRow).Error; err != nil {
		// Lost a seed race: the domain row appeared between the lookup and
		// this insert. Treat as already seeded.
		if isUniqueViolation(err) {
			return out, nil
		}
		return out, err
	}
	out.TenantCreated = true
	return out, nil
}

type tenantModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (tenantModel) TableName() string {
	return "tenants"
}

type tenantDomainModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	TenantID  string    `gorm:"column:tenant_id"`
	Domain    string    `gorm:"column:domain"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (tenantDomainModel) TableName() string {
	return "tenant_domains"
}
