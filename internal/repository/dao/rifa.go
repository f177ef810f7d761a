package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrRifaNoActiva      = errors.New("la rifa no está activa actualmente")
	ErrGanadorNoHallado  = errors.New("no se encontró participante con ese número")
	ErrAdminNoEncontrado = errors.New("administrador no encontrado")
)

type RifaConfig struct {
	ID uint `gorm:"primaryKey"`

	Estado        string `gorm:"not null;default:activa"`
	NumeroGanador *string
	FechaCierre   *time.Time

	FechaActualizacion time.Time `gorm:"not null;autoUpdateTime"`
}

func (RifaConfig) TableName() string {
	return "configuracion_rifa"
}

type Participacion struct {
	ID uint `gorm:"primaryKey"`

	ClienteID  uint   `gorm:"not null"`
	CodigoID   uint   `gorm:"not null"`
	NumeroRifa string `gorm:"column:numero_rifa;unique;not null"`

	FechaAsignacion time.Time `gorm:"not null;autoCreateTime"`
}

func (Participacion) TableName() string {
	return "participaciones"
}

type AdminUser struct {
	ID uint `gorm:"primaryKey"`

	Usuario      string `gorm:"unique;not null"`
	Rol          string `gorm:"not null;default:admin"`
	PasswordHash string `gorm:"not null"`

	FechaCreacion time.Time `gorm:"not null;autoCreateTime"`
}

func (AdminUser) TableName() string {
	return "usuarios_internos"
}

// GanadorRow joins participacion -> cliente -> sede for winner lookup.
type GanadorRow struct {
	NumeroRifa string
	Nombre     string
	Apellidos  string
	Correo     string
	Telefono   string
	Sede       string
}

type RifaDAO struct {
	db *gorm.DB
}

func NewRifaDAO(db *gorm.DB) *RifaDAO {
	return &RifaDAO{
		db: db,
	}
}

// CurrentConfig returns the authoritative (latest) config row, creating a
// default active one on first use.
func (d *RifaDAO) CurrentConfig(ctx context.Context) (RifaConfig, error) {
	var conf RifaConfig

	result := d.db.WithContext(ctx).Order("id DESC").First(&conf)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			conf = RifaConfig{Estado: "activa"}
			if err := d.db.WithContext(ctx).Create(&conf).Error; err != nil {
				return RifaConfig{}, err
			}
			return conf, nil
		}

		return RifaConfig{}, result.Error
	}

	return conf, nil
}

func (d *RifaDAO) CountParticipaciones(ctx context.Context) (int64, error) {
	var total int64
	if err := d.db.WithContext(ctx).Model(&Participacion{}).Count(&total).Error; err != nil {
		return 0, err
	}

	return total, nil
}

func (d *RifaDAO) UpdateEstado(ctx context.Context, estado string) error {
	updates := map[string]any{
		"estado":              estado,
		"fecha_actualizacion": time.Now(),
	}
	if estado == "cerrada" {
		updates["fecha_cierre"] = time.Now()
	} else {
		updates["fecha_cierre"] = nil
	}

	return d.db.WithContext(ctx).Model(&RifaConfig{}).
		Where("id = (?)", d.db.Model(&RifaConfig{}).Select("MAX(id)")).
		Updates(updates).Error
}

// FindGanador looks up the holder of a raffle number. It does not touch the
// config row; recording the winner is a separate, advisory write.
func (d *RifaDAO) FindGanador(ctx context.Context, numeroRifa string) (GanadorRow, error) {
	var row GanadorRow

	result := d.db.WithContext(ctx).Table("participaciones p").
		Select(`p.numero_rifa, c.nombre, c.apellidos, c.correo, c.telefono, s.nombre AS sede`).
		Joins("JOIN clientes c ON p.cliente_id = c.id").
		Joins("JOIN sedes s ON c.sede_id = s.id").
		Where("p.numero_rifa = ?", numeroRifa).
		Scan(&row)
	if result.Error != nil {
		return GanadorRow{}, result.Error
	}
	if row.NumeroRifa == "" {
		return GanadorRow{}, ErrGanadorNoHallado
	}

	return row, nil
}

func (d *RifaDAO) SetNumeroGanador(ctx context.Context, numeroRifa string) error {
	return d.db.WithContext(ctx).Model(&RifaConfig{}).
		Where("id = (?)", d.db.Model(&RifaConfig{}).Select("MAX(id)")).
		Updates(map[string]any{
			"numero_ganador":      numeroRifa,
			"fecha_actualizacion": time.Now(),
		}).Error
}

func (d *RifaDAO) FindAdminByUsuario(ctx context.Context, usuario string) (AdminUser, error) {
	var admin AdminUser

	result := d.db.WithContext(ctx).First(&admin, "usuario = ?", usuario)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return AdminUser{}, ErrAdminNoEncontrado
		}

		return AdminUser{}, result.Error
	}

	return admin, nil
}

func (d *RifaDAO) FindAdminByID(ctx context.Context, id uint) (AdminUser, error) {
	var admin AdminUser

	result := d.db.WithContext(ctx).First(&admin, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return AdminUser{}, ErrAdminNoEncontrado
		}

		return AdminUser{}, result.Error
	}

	return admin, nil
}

func (d *RifaDAO) DashboardStats(ctx context.Context) (DashboardCounts, error) {
	var counts DashboardCounts

	db := d.db.WithContext(ctx)
	if err := db.Model(&Cliente{}).Count(&counts.TotalClientes).Error; err != nil {
		return DashboardCounts{}, err
	}
	if err := db.Model(&Participacion{}).Count(&counts.TotalParticipaciones).Error; err != nil {
		return DashboardCounts{}, err
	}
	if err := db.Model(&Codigo{}).Where("estado = ?", "usado").Count(&counts.CodigosUsados).Error; err != nil {
		return DashboardCounts{}, err
	}
	if err := db.Model(&Codigo{}).Where("estado = ?", "activo").Count(&counts.CodigosDisponibles).Error; err != nil {
		return DashboardCounts{}, err
	}

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfPrevMonth := startOfMonth.AddDate(0, -1, 0)

	if err := db.Model(&Cliente{}).
		Where("fecha_registro >= ?", startOfMonth).
		Count(&counts.ClientesMesActual).Error; err != nil {
		return DashboardCounts{}, err
	}
	if err := db.Model(&Cliente{}).
		Where("fecha_registro >= ? AND fecha_registro < ?", startOfPrevMonth, startOfMonth).
		Count(&counts.ClientesMesAnterior).Error; err != nil {
		return DashboardCounts{}, err
	}

	return counts, nil
}

type DashboardCounts struct {
	TotalClientes        int64
	TotalParticipaciones int64
	CodigosUsados        int64
	CodigosDisponibles   int64
	ClientesMesActual    int64
	ClientesMesAnterior  int64
}
