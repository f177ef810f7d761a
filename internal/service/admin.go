package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/epicorifa/rifa-api/internal/domain"
	"github.com/epicorifa/rifa-api/internal/repository"
)

var (
	ErrAdminNoEncontrado  = repository.ErrAdminNoEncontrado
	ErrGanadorNoHallado   = repository.ErrGanadorNoHallado
	ErrPasswordIncorrecta = errors.New("contraseña incorrecta")
	ErrEstadoInvalido     = errors.New("estado inválido")
)

type AdminRifaRepository interface {
	CurrentConfig(ctx context.Context) (domain.RifaConfig, error)
	UpdateEstado(ctx context.Context, estado string) error
	FindGanador(ctx context.Context, numeroRifa string) (domain.Ganador, error)
	SetNumeroGanador(ctx context.Context, numeroRifa string) error
	FindAdminByUsuario(ctx context.Context, usuario string) (domain.AdminUser, error)
	FindAdminByID(ctx context.Context, id uint) (domain.AdminUser, error)
	DashboardStats(ctx context.Context) (domain.DashboardStats, domain.MetricasMensuales, error)
	ResetRaffleSystem(ctx context.Context) (domain.ResetResult, error)
}

type AdminClienteRepository interface {
	List(ctx context.Context, filter domain.ClienteFilter) (domain.ClientePage, error)
}

type AdminService struct {
	rifaRepo    AdminRifaRepository
	clienteRepo AdminClienteRepository
}

func NewAdminService(rifaRepo AdminRifaRepository, clienteRepo AdminClienteRepository) *AdminService {
	return &AdminService{
		rifaRepo:    rifaRepo,
		clienteRepo: clienteRepo,
	}
}

// Login resolves an admin by usuario and verifies the password. Unknown user
// and wrong password return the same error.
func (s *AdminService) Login(ctx context.Context, usuario, password string) (domain.AdminUser, error) {
	admin, err := s.rifaRepo.FindAdminByUsuario(ctx, usuario)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNoEncontrado) {
			return domain.AdminUser{}, ErrCredencialesInvalidas
		}

		return domain.AdminUser{}, fmt.Errorf("s.rifaRepo.FindAdminByUsuario -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return domain.AdminUser{}, ErrCredencialesInvalidas
	}

	return admin, nil
}

func (s *AdminService) GetConfig(ctx context.Context) (domain.RifaConfig, error) {
	conf, err := s.rifaRepo.CurrentConfig(ctx)
	if err != nil {
		return domain.RifaConfig{}, fmt.Errorf("s.rifaRepo.CurrentConfig -> %w", err)
	}

	return conf, nil
}

func (s *AdminService) UpdateEstado(ctx context.Context, estado string) error {
	switch estado {
	case domain.RifaActiva, domain.RifaPausada, domain.RifaCerrada:
	default:
		return ErrEstadoInvalido
	}

	if err := s.rifaRepo.UpdateEstado(ctx, estado); err != nil {
		return fmt.Errorf("s.rifaRepo.UpdateEstado -> %w", err)
	}

	return nil
}

func (s *AdminService) Dashboard(ctx context.Context) (domain.DashboardStats, domain.MetricasMensuales, error) {
	stats, metricas, err := s.rifaRepo.DashboardStats(ctx)
	if err != nil {
		return domain.DashboardStats{}, domain.MetricasMensuales{}, fmt.Errorf("s.rifaRepo.DashboardStats -> %w", err)
	}

	return stats, metricas, nil
}

func (s *AdminService) ListClientes(ctx context.Context, filter domain.ClienteFilter) (domain.ClientePage, error) {
	page, err := s.clienteRepo.List(ctx, filter)
	if err != nil {
		return domain.ClientePage{}, fmt.Errorf("s.clienteRepo.List -> %w", err)
	}

	return page, nil
}

// DesignateWinner looks up the holder of the number and, only on a hit,
// records the number in the config. Raffle state is unaffected; the record
// is advisory.
func (s *AdminService) DesignateWinner(ctx context.Context, numeroRifa string) (domain.Ganador, error) {
	ganador, err := s.rifaRepo.FindGanador(ctx, numeroRifa)
	if err != nil {
		return domain.Ganador{}, fmt.Errorf("s.rifaRepo.FindGanador -> %w", err)
	}

	if err = s.rifaRepo.SetNumeroGanador(ctx, numeroRifa); err != nil {
		return domain.Ganador{}, fmt.Errorf("s.rifaRepo.SetNumeroGanador -> %w", err)
	}

	return ganador, nil
}

// ResetRaffle re-verifies the acting admin's password before delegating to
// the destructive reset.
func (s *AdminService) ResetRaffle(ctx context.Context, adminID uint, password string) (domain.ResetResult, error) {
	admin, err := s.rifaRepo.FindAdminByID(ctx, adminID)
	if err != nil {
		return domain.ResetResult{}, fmt.Errorf("s.rifaRepo.FindAdminByID -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return domain.ResetResult{}, ErrPasswordIncorrecta
	}

	result, err := s.rifaRepo.ResetRaffleSystem(ctx)
	if err != nil {
		return domain.ResetResult{}, fmt.Errorf("s.rifaRepo.ResetRaffleSystem -> %w", err)
	}

	return result, nil
}
