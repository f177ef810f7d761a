package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/epicorifa/rifa-api/internal/domain"
	"github.com/epicorifa/rifa-api/internal/repository"
)

// bcryptCost is deliberately above the library default; password hashing is
// the dominant per-request latency on auth routes and that is intended.
const bcryptCost = 12

var (
	ErrRifaNoActiva          = repository.ErrRifaNoActiva
	ErrCodigoNoEncontrado    = repository.ErrCodigoNoEncontrado
	ErrCodigoUsado           = repository.ErrCodigoUsado
	ErrCodigoExpirado        = repository.ErrCodigoExpirado
	ErrCorreoRegistrado      = repository.ErrCorreoRegistrado
	ErrSedeInvalida          = repository.ErrSedeInvalida
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
)

type AuthRifaRepository interface {
	CurrentConfig(ctx context.Context) (domain.RifaConfig, error)
}

type AuthCodigoRepository interface {
	CheckRedeemable(ctx context.Context, codigo string) error
}

type AuthClienteRepository interface {
	FindByCorreo(ctx context.Context, correo string) (domain.Cliente, error)
}

type AuthRedemptionRepository interface {
	RegisterAndRedeem(ctx context.Context, cliente domain.Cliente, codigo string) (domain.Cliente, domain.Participacion, error)
	Redeem(ctx context.Context, codigo string, clienteID uint) (domain.Participacion, error)
}

type AuthService struct {
	rifaRepo       AuthRifaRepository
	codigoRepo     AuthCodigoRepository
	clienteRepo    AuthClienteRepository
	redemptionRepo AuthRedemptionRepository
}

func NewAuthService(
	rifaRepo AuthRifaRepository,
	codigoRepo AuthCodigoRepository,
	clienteRepo AuthClienteRepository,
	redemptionRepo AuthRedemptionRepository,
) *AuthService {
	return &AuthService{
		rifaRepo:       rifaRepo,
		codigoRepo:     codigoRepo,
		clienteRepo:    clienteRepo,
		redemptionRepo: redemptionRepo,
	}
}

// ValidateCode is the read-only pre-check used by the landing form. It never
// consumes the code.
func (s *AuthService) ValidateCode(ctx context.Context, codigo string) error {
	conf, err := s.rifaRepo.CurrentConfig(ctx)
	if err != nil {
		return fmt.Errorf("s.rifaRepo.CurrentConfig -> %w", err)
	}
	if conf.Estado != domain.RifaActiva {
		return ErrRifaNoActiva
	}

	if err = s.codigoRepo.CheckRedeemable(ctx, codigo); err != nil {
		return err
	}

	return nil
}

// Register creates a cliente and redeems the code in one transaction. The
// returned Participacion carries the assigned raffle number.
func (s *AuthService) Register(ctx context.Context, cliente domain.Cliente, password, codigo string) (domain.Cliente, domain.Participacion, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return domain.Cliente{}, domain.Participacion{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}
	cliente.PasswordHash = string(hash)

	created, participacion, err := s.redemptionRepo.RegisterAndRedeem(ctx, cliente, codigo)
	if err != nil {
		return domain.Cliente{}, domain.Participacion{}, fmt.Errorf("s.redemptionRepo.RegisterAndRedeem -> %w", err)
	}

	return created, participacion, nil
}

// Login verifies the cliente's credentials and redeems an additional code.
// Unknown correo and wrong password collapse into the same error so the
// endpoint cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, correo, password, codigo string) (domain.Cliente, domain.Participacion, error) {
	conf, err := s.rifaRepo.CurrentConfig(ctx)
	if err != nil {
		return domain.Cliente{}, domain.Participacion{}, fmt.Errorf("s.rifaRepo.CurrentConfig -> %w", err)
	}
	if conf.Estado != domain.RifaActiva {
		return domain.Cliente{}, domain.Participacion{}, ErrRifaNoActiva
	}

	cliente, err := s.clienteRepo.FindByCorreo(ctx, correo)
	if err != nil {
		if errors.Is(err, repository.ErrClienteNoEncontrado) {
			return domain.Cliente{}, domain.Participacion{}, ErrCredencialesInvalidas
		}

		return domain.Cliente{}, domain.Participacion{}, fmt.Errorf("s.clienteRepo.FindByCorreo -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(cliente.PasswordHash), []byte(password)); err != nil {
		return domain.Cliente{}, domain.Participacion{}, ErrCredencialesInvalidas
	}

	participacion, err := s.redemptionRepo.Redeem(ctx, codigo, cliente.ID)
	if err != nil {
		return domain.Cliente{}, domain.Participacion{}, fmt.Errorf("s.redemptionRepo.Redeem -> %w", err)
	}

	return cliente, participacion, nil
}
