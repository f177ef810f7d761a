package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrSedeNoEncontrada = errors.New("sede no encontrada")
	ErrSedeInvalida     = errors.New("sede inválida o inactiva")
)

type Sede struct {
	ID uint `gorm:"primaryKey"`

	Nombre    string `gorm:"not null"`
	Ciudad    string `gorm:"not null"`
	Direccion string
	Estado    string `gorm:"not null;default:activa"`

	FechaCreacion time.Time `gorm:"not null;autoCreateTime"`
}

func (Sede) TableName() string {
	return "sedes"
}

type SedeDAO struct {
	db *gorm.DB
}

func NewSedeDAO(db *gorm.DB) *SedeDAO {
	return &SedeDAO{
		db: db,
	}
}

func (d *SedeDAO) Insert(ctx context.Context, sede Sede) (Sede, error) {
	sede.Estado = "activa"

	result := d.db.WithContext(ctx).Create(&sede)
	if result.Error != nil {
		return Sede{}, result.Error
	}

	return sede, nil
}

func (d *SedeDAO) FindAll(ctx context.Context, onlyActive bool) ([]Sede, error) {
	var sedes []Sede

	query := d.db.WithContext(ctx).Order("nombre")
	if onlyActive {
		query = query.Where("estado = ?", "activa")
	}

	if err := query.Find(&sedes).Error; err != nil {
		return nil, err
	}

	return sedes, nil
}

func (d *SedeDAO) Update(ctx context.Context, sede Sede) (Sede, error) {
	result := d.db.WithContext(ctx).Model(&Sede{}).
		Where("id = ?", sede.ID).
		Updates(map[string]any{
			"nombre":    sede.Nombre,
			"ciudad":    sede.Ciudad,
			"direccion": sede.Direccion,
		})
	if result.Error != nil {
		return Sede{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Sede{}, ErrSedeNoEncontrada
	}

	var updated Sede
	if err := d.db.WithContext(ctx).First(&updated, sede.ID).Error; err != nil {
		return Sede{}, err
	}

	return updated, nil
}

// Deactivate is the soft delete: sedes are never removed, only flipped to
// inactiva so existing clientes keep a valid reference.
func (d *SedeDAO) Deactivate(ctx context.Context, id uint) (Sede, error) {
	result := d.db.WithContext(ctx).Model(&Sede{}).
		Where("id = ?", id).
		Update("estado", "inactiva")
	if result.Error != nil {
		return Sede{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Sede{}, ErrSedeNoEncontrada
	}

	var sede Sede
	if err := d.db.WithContext(ctx).First(&sede, id).Error; err != nil {
		return Sede{}, err
	}

	return sede, nil
}
