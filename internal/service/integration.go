package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/epicorifa/rifa-api/internal/domain"
	"github.com/epicorifa/rifa-api/internal/repository"
)

var (
	ErrCodigoExiste  = repository.ErrCodigoExiste
	ErrInvalidAPIKey = errors.New("invalid API key")
)

type IntegrationRepository interface {
	FindActiveByName(ctx context.Context, name string) (domain.Integration, error)
	LogCall(ctx context.Context, entry domain.IntegrationLog) error
	Ping(ctx context.Context) error
}

type IntegrationCodigoRepository interface {
	Create(ctx context.Context, codigo domain.Codigo) (domain.Codigo, error)
	FindByCodigo(ctx context.Context, codigo string) (domain.Codigo, error)
}

type IntegrationService struct {
	repo       IntegrationRepository
	codigoRepo IntegrationCodigoRepository
}

func NewIntegrationService(repo IntegrationRepository, codigoRepo IntegrationCodigoRepository) *IntegrationService {
	return &IntegrationService{
		repo:       repo,
		codigoRepo: codigoRepo,
	}
}

// VerifyAPIKey hash-compares the presented key against the stored hash of a
// non-revoked integration. Revoked and unknown integrations fail alike.
func (s *IntegrationService) VerifyAPIKey(ctx context.Context, apiKey, integrationName string) error {
	integration, err := s.repo.FindActiveByName(ctx, integrationName)
	if err != nil {
		if errors.Is(err, repository.ErrIntegrationNoEncontrada) {
			return ErrInvalidAPIKey
		}

		return fmt.Errorf("s.repo.FindActiveByName -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(integration.APIKeyHash), []byte(apiKey)); err != nil {
		return ErrInvalidAPIKey
	}

	return nil
}

// SaveCode stores a partner-generated code. The duplicate pre-check gives
// the partner a clean 409; the unique index behind Create closes the window
// between check and insert.
func (s *IntegrationService) SaveCode(ctx context.Context, codigo string, expira *time.Time, meta map[string]any, generadoPor string) (domain.Codigo, error) {
	if _, err := s.codigoRepo.FindByCodigo(ctx, codigo); err == nil {
		return domain.Codigo{}, ErrCodigoExiste
	} else if !errors.Is(err, repository.ErrCodigoNoEncontrado) {
		return domain.Codigo{}, fmt.Errorf("s.codigoRepo.FindByCodigo -> %w", err)
	}

	var metaJSON string
	if len(meta) > 0 {
		raw, err := json.Marshal(meta)
		if err != nil {
			return domain.Codigo{}, fmt.Errorf("json.Marshal -> %w", err)
		}
		metaJSON = string(raw)
	}

	created, err := s.codigoRepo.Create(ctx, domain.Codigo{
		Codigo:          codigo,
		FechaExpiracion: expira,
		GeneradoPor:     generadoPor,
		Meta:            metaJSON,
	})
	if err != nil {
		return domain.Codigo{}, fmt.Errorf("s.codigoRepo.Create -> %w", err)
	}

	return created, nil
}

// LogCall writes the audit row for a partner call. Best-effort: failures are
// logged server-side and swallowed so they never fail the request.
func (s *IntegrationService) LogCall(ctx context.Context, entry domain.IntegrationLog) {
	if err := s.repo.LogCall(ctx, entry); err != nil {
		zap.L().Error("failed to write integration audit log",
			zap.String("trace_id", entry.TraceID),
			zap.String("endpoint", entry.Endpoint),
			zap.Error(err),
		)
	}
}

func (s *IntegrationService) Health(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
