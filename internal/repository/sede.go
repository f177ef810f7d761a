package repository

import (
	"context"
	"fmt"

	"github.com/epicorifa/rifa-api/internal/domain"
	"github.com/epicorifa/rifa-api/internal/repository/dao"
)

var (
	ErrSedeNoEncontrada = dao.ErrSedeNoEncontrada
	ErrSedeInvalida     = dao.ErrSedeInvalida
)

type SedeDAO interface {
	Insert(ctx context.Context, sede dao.Sede) (dao.Sede, error)
	FindAll(ctx context.Context, onlyActive bool) ([]dao.Sede, error)
	Update(ctx context.Context, sede dao.Sede) (dao.Sede, error)
	Deactivate(ctx context.Context, id uint) (dao.Sede, error)
}

type SedeRepository struct {
	dao SedeDAO
}

func NewSedeRepository(dao SedeDAO) *SedeRepository {
	return &SedeRepository{
		dao: dao,
	}
}

func (r *SedeRepository) Create(ctx context.Context, sede domain.Sede) (domain.Sede, error) {
	created, err := r.dao.Insert(ctx, dao.Sede{
		Nombre:    sede.Nombre,
		Ciudad:    sede.Ciudad,
		Direccion: sede.Direccion,
	})
	if err != nil {
		return domain.Sede{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return sedeDaoToDomain(created), nil
}

func (r *SedeRepository) FindAll(ctx context.Context, onlyActive bool) ([]domain.Sede, error) {
	found, err := r.dao.FindAll(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	sedes := make([]domain.Sede, 0, len(found))
	for _, s := range found {
		sedes = append(sedes, sedeDaoToDomain(s))
	}

	return sedes, nil
}

func (r *SedeRepository) Update(ctx context.Context, sede domain.Sede) (domain.Sede, error) {
	updated, err := r.dao.Update(ctx, dao.Sede{
		ID:        sede.ID,
		Nombre:    sede.Nombre,
		Ciudad:    sede.Ciudad,
		Direccion: sede.Direccion,
	})
	if err != nil {
		return domain.Sede{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return sedeDaoToDomain(updated), nil
}

func (r *SedeRepository) Deactivate(ctx context.Context, id uint) (domain.Sede, error) {
	deactivated, err := r.dao.Deactivate(ctx, id)
	if err != nil {
		return domain.Sede{}, fmt.Errorf("r.dao.Deactivate -> %w", err)
	}

	return sedeDaoToDomain(deactivated), nil
}

func sedeDaoToDomain(s dao.Sede) domain.Sede {
	return domain.Sede{
		ID:            s.ID,
		Nombre:        s.Nombre,
		Ciudad:        s.Ciudad,
		Direccion:     s.Direccion,
		Estado:        s.Estado,
		FechaCreacion: s.FechaCreacion,
	}
}
