package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrCorreoRegistrado    = errors.New("este correo ya está registrado")
	ErrClienteNoEncontrado = errors.New("cliente no encontrado")
)

type Cliente struct {
	ID uint `gorm:"primaryKey"`

	Nombre       string `gorm:"not null"`
	Apellidos    string `gorm:"not null"`
	Telefono     string `gorm:"not null"`
	Correo       string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`

	SedeID uint `gorm:"not null"`
	Sede   Sede `gorm:"foreignKey:SedeID"`

	FechaRegistro time.Time `gorm:"not null;autoCreateTime"`
}

func (Cliente) TableName() string {
	return "clientes"
}

// ClienteRow is the admin listing projection: full name, sede name and the
// aggregated raffle numbers.
type ClienteRow struct {
	ID            uint
	Nombre        string
	Apellidos     string
	Correo        string
	Telefono      string
	Sede          string
	Numeros       string
	FechaRegistro time.Time
}

type ClienteDAO struct {
	db *gorm.DB
}

func NewClienteDAO(db *gorm.DB) *ClienteDAO {
	return &ClienteDAO{
		db: db,
	}
}

func (d *ClienteDAO) Insert(ctx context.Context, cliente Cliente) (Cliente, error) {
	result := d.db.WithContext(ctx).Create(&cliente)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "correo") {
			return Cliente{}, ErrCorreoRegistrado
		}

		return Cliente{}, result.Error
	}

	return cliente, nil
}

func (d *ClienteDAO) FindByID(ctx context.Context, id uint) (Cliente, error) {
	var cliente Cliente

	result := d.db.WithContext(ctx).First(&cliente, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Cliente{}, ErrClienteNoEncontrado
		}

		return Cliente{}, result.Error
	}

	return cliente, nil
}

func (d *ClienteDAO) FindByCorreo(ctx context.Context, correo string) (Cliente, error) {
	var cliente Cliente

	result := d.db.WithContext(ctx).First(&cliente, "correo = ?", correo)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Cliente{}, ErrClienteNoEncontrado
		}

		return Cliente{}, result.Error
	}

	return cliente, nil
}

// List returns one page of clientes with sede name and their raffle numbers
// aggregated into a comma-separated string, plus the unpaginated total.
func (d *ClienteDAO) List(ctx context.Context, search string, sedeID uint, limit, offset int) ([]ClienteRow, int64, error) {
	base := d.db.WithContext(ctx).Table("clientes c").
		Joins("LEFT JOIN sedes s ON c.sede_id = s.id")

	if search != "" {
		pattern := "%" + search + "%"
		base = base.Where("c.nombre ILIKE ? OR c.apellidos ILIKE ? OR c.correo ILIKE ?", pattern, pattern, pattern)
	}
	if sedeID != 0 {
		base = base.Where("c.sede_id = ?", sedeID)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []ClienteRow
	err := base.Session(&gorm.Session{}).
		Select(`c.id, c.nombre, c.apellidos, c.correo, c.telefono,
			COALESCE(s.nombre, '') AS sede,
			COALESCE(STRING_AGG(p.numero_rifa, ','), '') AS numeros,
			c.fecha_registro`).
		Joins("LEFT JOIN participaciones p ON p.cliente_id = c.id").
		Group("c.id, c.nombre, c.apellidos, c.correo, c.telefono, s.nombre, c.fecha_registro").
		Order("c.fecha_registro DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func isUniqueViolation(err error, column string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(pgErr.ConstraintName, column)
}
