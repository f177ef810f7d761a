package service

import (
	"context"
	"fmt"

	"github.com/epicorifa/rifa-api/internal/domain"
	"github.com/epicorifa/rifa-api/internal/repository"
)

var ErrSedeNoEncontrada = repository.ErrSedeNoEncontrada

type SedeRepository interface {
	Create(ctx context.Context, sede domain.Sede) (domain.Sede, error)
	FindAll(ctx context.Context, onlyActive bool) ([]domain.Sede, error)
	Update(ctx context.Context, sede domain.Sede) (domain.Sede, error)
	Deactivate(ctx context.Context, id uint) (domain.Sede, error)
}

type SedeService struct {
	repo SedeRepository
}

func NewSedeService(repo SedeRepository) *SedeService {
	return &SedeService{
		repo: repo,
	}
}

func (s *SedeService) CreateSede(ctx context.Context, sede domain.Sede) (domain.Sede, error) {
	created, err := s.repo.Create(ctx, sede)
	if err != nil {
		return domain.Sede{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *SedeService) GetSedes(ctx context.Context, onlyActive bool) ([]domain.Sede, error) {
	sedes, err := s.repo.FindAll(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return sedes, nil
}

func (s *SedeService) UpdateSede(ctx context.Context, sede domain.Sede) (domain.Sede, error) {
	updated, err := s.repo.Update(ctx, sede)
	if err != nil {
		return domain.Sede{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeactivateSede is the DELETE semantics: a state flip, never a hard delete.
func (s *SedeService) DeactivateSede(ctx context.Context, id uint) (domain.Sede, error) {
	sede, err := s.repo.Deactivate(ctx, id)
	if err != nil {
		return domain.Sede{}, fmt.Errorf("s.repo.Deactivate -> %w", err)
	}

	return sede, nil
}
