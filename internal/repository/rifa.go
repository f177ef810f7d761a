package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/epicorifa/rifa-api/internal/domain"
	"github.com/epicorifa/rifa-api/internal/repository/dao"
)

var (
	ErrRifaNoActiva      = dao.ErrRifaNoActiva
	ErrGanadorNoHallado  = dao.ErrGanadorNoHallado
	ErrAdminNoEncontrado = dao.ErrAdminNoEncontrado
)

type RifaDAO interface {
	CurrentConfig(ctx context.Context) (dao.RifaConfig, error)
	CountParticipaciones(ctx context.Context) (int64, error)
	UpdateEstado(ctx context.Context, estado string) error
	FindGanador(ctx context.Context, numeroRifa string) (dao.GanadorRow, error)
	SetNumeroGanador(ctx context.Context, numeroRifa string) error
	FindAdminByUsuario(ctx context.Context, usuario string) (dao.AdminUser, error)
	FindAdminByID(ctx context.Context, id uint) (dao.AdminUser, error)
	DashboardStats(ctx context.Context) (dao.DashboardCounts, error)
	ResetRaffleSystem(ctx context.Context) (int64, int64, error)
}

type RifaRepository struct {
	dao RifaDAO
}

func NewRifaRepository(dao RifaDAO) *RifaRepository {
	return &RifaRepository{
		dao: dao,
	}
}

func (r *RifaRepository) CurrentConfig(ctx context.Context) (domain.RifaConfig, error) {
	conf, err := r.dao.CurrentConfig(ctx)
	if err != nil {
		return domain.RifaConfig{}, fmt.Errorf("r.dao.CurrentConfig -> %w", err)
	}

	total, err := r.dao.CountParticipaciones(ctx)
	if err != nil {
		return domain.RifaConfig{}, fmt.Errorf("r.dao.CountParticipaciones -> %w", err)
	}

	return domain.RifaConfig{
		ID:                   conf.ID,
		Estado:               conf.Estado,
		NumeroGanador:        conf.NumeroGanador,
		FechaCierre:          conf.FechaCierre,
		FechaActualizacion:   conf.FechaActualizacion,
		TotalParticipaciones: total,
	}, nil
}

func (r *RifaRepository) UpdateEstado(ctx context.Context, estado string) error {
	if err := r.dao.UpdateEstado(ctx, estado); err != nil {
		return fmt.Errorf("r.dao.UpdateEstado -> %w", err)
	}

	return nil
}

func (r *RifaRepository) FindGanador(ctx context.Context, numeroRifa string) (domain.Ganador, error) {
	row, err := r.dao.FindGanador(ctx, numeroRifa)
	if err != nil {
		return domain.Ganador{}, fmt.Errorf("r.dao.FindGanador -> %w", err)
	}

	return domain.Ganador{
		NumeroRifa: row.NumeroRifa,
		Cliente: domain.GanadorCliente{
			Nombre:   strings.TrimSpace(row.Nombre + " " + row.Apellidos),
			Correo:   row.Correo,
			Telefono: row.Telefono,
			Sede:     row.Sede,
		},
	}, nil
}

func (r *RifaRepository) SetNumeroGanador(ctx context.Context, numeroRifa string) error {
	if err := r.dao.SetNumeroGanador(ctx, numeroRifa); err != nil {
		return fmt.Errorf("r.dao.SetNumeroGanador -> %w", err)
	}

	return nil
}

func (r *RifaRepository) FindAdminByUsuario(ctx context.Context, usuario string) (domain.AdminUser, error) {
	admin, err := r.dao.FindAdminByUsuario(ctx, usuario)
	if err != nil {
		return domain.AdminUser{}, fmt.Errorf("r.dao.FindAdminByUsuario -> %w", err)
	}

	return adminDaoToDomain(admin), nil
}

func (r *RifaRepository) FindAdminByID(ctx context.Context, id uint) (domain.AdminUser, error) {
	admin, err := r.dao.FindAdminByID(ctx, id)
	if err != nil {
		return domain.AdminUser{}, fmt.Errorf("r.dao.FindAdminByID -> %w", err)
	}

	return adminDaoToDomain(admin), nil
}

func (r *RifaRepository) DashboardStats(ctx context.Context) (domain.DashboardStats, domain.MetricasMensuales, error) {
	counts, err := r.dao.DashboardStats(ctx)
	if err != nil {
		return domain.DashboardStats{}, domain.MetricasMensuales{}, fmt.Errorf("r.dao.DashboardStats -> %w", err)
	}

	conf, err := r.dao.CurrentConfig(ctx)
	if err != nil {
		return domain.DashboardStats{}, domain.MetricasMensuales{}, fmt.Errorf("r.dao.CurrentConfig -> %w", err)
	}

	stats := domain.DashboardStats{
		TotalClientes:        counts.TotalClientes,
		TotalParticipaciones: counts.TotalParticipaciones,
		CodigosUsados:        counts.CodigosUsados,
		CodigosDisponibles:   counts.CodigosDisponibles,
		EstadoRifa:           conf.Estado,
	}

	metricas := domain.MetricasMensuales{
		ClientesNuevosMesActual:   counts.ClientesMesActual,
		ClientesNuevosMesAnterior: counts.ClientesMesAnterior,
		CrecimientoPorcentual:     crecimiento(counts.ClientesMesActual, counts.ClientesMesAnterior),
	}

	return stats, metricas, nil
}

func (r *RifaRepository) ResetRaffleSystem(ctx context.Context) (domain.ResetResult, error) {
	codigos, participaciones, err := r.dao.ResetRaffleSystem(ctx)
	if err != nil {
		return domain.ResetResult{}, fmt.Errorf("r.dao.ResetRaffleSystem -> %w", err)
	}

	return domain.ResetResult{
		AffectedCodigos:         codigos,
		AffectedParticipaciones: participaciones,
	}, nil
}

func adminDaoToDomain(a dao.AdminUser) domain.AdminUser {
	return domain.AdminUser{
		ID:            a.ID,
		Usuario:       a.Usuario,
		Rol:           a.Rol,
		PasswordHash:  a.PasswordHash,
		FechaCreacion: a.FechaCreacion,
	}
}

func crecimiento(actual, anterior int64) int {
	if anterior > 0 {
		return int(((actual - anterior) * 100) / anterior)
	}
	if actual > 0 {
		return 100
	}

	return 0
}
