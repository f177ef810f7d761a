package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrIntegrationNoEncontrada = errors.New("integration not found")

type Integration struct {
	ID uint `gorm:"primaryKey"`

	Name       string `gorm:"unique;not null"`
	APIKeyHash string `gorm:"not null"`
	RevokedAt  *time.Time
}

func (Integration) TableName() string {
	return "integrations"
}

type IntegrationLog struct {
	ID uint `gorm:"primaryKey"`

	TraceID         string `gorm:"not null"`
	Endpoint        string `gorm:"not null"`
	Method          string `gorm:"not null"`
	IntegrationName string
	StatusCode      int
	ErrorMessage    string
	Metadata        string

	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
}

func (IntegrationLog) TableName() string {
	return "integration_logs"
}

type IntegrationDAO struct {
	db *gorm.DB
}

func NewIntegrationDAO(db *gorm.DB) *IntegrationDAO {
	return &IntegrationDAO{
		db: db,
	}
}

// FindActiveByName skips revoked integrations; a revoked key fails lookup
// exactly like a missing one.
func (d *IntegrationDAO) FindActiveByName(ctx context.Context, name string) (Integration, error) {
	var integration Integration

	result := d.db.WithContext(ctx).
		First(&integration, "name = ? AND revoked_at IS NULL", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Integration{}, ErrIntegrationNoEncontrada
		}

		return Integration{}, result.Error
	}

	return integration, nil
}

func (d *IntegrationDAO) InsertLog(ctx context.Context, log IntegrationLog) error {
	return d.db.WithContext(ctx).Create(&log).Error
}

// Ping is the health probe used by the integration health endpoint.
func (d *IntegrationDAO) Ping(ctx context.Context) error {
	return d.db.WithContext(ctx).Exec("SELECT 1").Error
}
