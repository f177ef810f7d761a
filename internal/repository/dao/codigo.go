package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrCodigoNoEncontrado = errors.New("código no encontrado")
	ErrCodigoUsado        = errors.New("este código ya ha sido utilizado")
	ErrCodigoExpirado     = errors.New("este código ha expirado")

	// ErrCodigoExiste surfaces on the partner integration endpoint, whose
	// whole envelope is in English; the Spanish sentinels face end users.
	ErrCodigoExiste = errors.New("code already exists")
)

type Codigo struct {
	ID uint `gorm:"primaryKey"`

	Codigo          string `gorm:"unique;not null"`
	Estado          string `gorm:"not null;default:activo"`
	FechaExpiracion *time.Time
	GeneradoPor     string `gorm:"not null"`
	Meta            string

	FechaGeneracion time.Time `gorm:"not null;autoCreateTime"`
}

func (Codigo) TableName() string {
	return "codigos"
}

type CodigoDAO struct {
	db *gorm.DB
}

func NewCodigoDAO(db *gorm.DB) *CodigoDAO {
	return &CodigoDAO{
		db: db,
	}
}

// Insert creates a partner-generated code. The pre-existence check lives in
// the service for the friendly 409, but a concurrent insert racing past it
// still maps to ErrCodigoExiste via the unique index.
func (d *CodigoDAO) Insert(ctx context.Context, codigo Codigo) (Codigo, error) {
	result := d.db.WithContext(ctx).Create(&codigo)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "codigo") {
			return Codigo{}, ErrCodigoExiste
		}

		return Codigo{}, result.Error
	}

	return codigo, nil
}

func (d *CodigoDAO) FindByCodigo(ctx context.Context, codigo string) (Codigo, error) {
	var row Codigo

	result := d.db.WithContext(ctx).First(&row, "codigo = ?", codigo)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Codigo{}, ErrCodigoNoEncontrado
		}

		return Codigo{}, result.Error
	}

	return row, nil
}

// Redeemable reports why a code cannot be redeemed right now, or nil if it
// can. This is the advisory check; the redemption transaction re-checks
// under a row lock.
func Redeemable(c Codigo, now time.Time) error {
	if c.Estado == "usado" {
		return ErrCodigoUsado
	}
	if c.Estado == "expirado" || (c.FechaExpiracion != nil && c.FechaExpiracion.Before(now)) {
		return ErrCodigoExpirado
	}
	if c.Estado != "activo" {
		return ErrCodigoNoEncontrado
	}

	return nil
}
