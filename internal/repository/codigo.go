package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/epicorifa/rifa-api/internal/domain"
	"github.com/epicorifa/rifa-api/internal/repository/dao"
)

var (
	ErrCodigoNoEncontrado = dao.ErrCodigoNoEncontrado
	ErrCodigoUsado        = dao.ErrCodigoUsado
	ErrCodigoExpirado     = dao.ErrCodigoExpirado
	ErrCodigoExiste       = dao.ErrCodigoExiste
)

type CodigoDAO interface {
	Insert(ctx context.Context, codigo dao.Codigo) (dao.Codigo, error)
	FindByCodigo(ctx context.Context, codigo string) (dao.Codigo, error)
}

type CodigoRepository struct {
	dao CodigoDAO
}

func NewCodigoRepository(dao CodigoDAO) *CodigoRepository {
	return &CodigoRepository{
		dao: dao,
	}
}

func (r *CodigoRepository) Create(ctx context.Context, codigo domain.Codigo) (domain.Codigo, error) {
	created, err := r.dao.Insert(ctx, dao.Codigo{
		Codigo:          codigo.Codigo,
		Estado:          domain.CodigoActivo,
		FechaExpiracion: codigo.FechaExpiracion,
		GeneradoPor:     codigo.GeneradoPor,
		Meta:            codigo.Meta,
	})
	if err != nil {
		return domain.Codigo{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return codigoDaoToDomain(created), nil
}

func (r *CodigoRepository) FindByCodigo(ctx context.Context, codigo string) (domain.Codigo, error) {
	found, err := r.dao.FindByCodigo(ctx, codigo)
	if err != nil {
		return domain.Codigo{}, fmt.Errorf("r.dao.FindByCodigo -> %w", err)
	}

	return codigoDaoToDomain(found), nil
}

// CheckRedeemable reports the advisory redeemability of a code. Advisory
// outcomes are returned as bare sentinels; their text is shown to clients.
func (r *CodigoRepository) CheckRedeemable(ctx context.Context, codigo string) error {
	found, err := r.dao.FindByCodigo(ctx, codigo)
	if err != nil {
		if errors.Is(err, dao.ErrCodigoNoEncontrado) {
			return ErrCodigoNoEncontrado
		}

		return fmt.Errorf("r.dao.FindByCodigo -> %w", err)
	}

	return dao.Redeemable(found, time.Now())
}

func codigoDaoToDomain(c dao.Codigo) domain.Codigo {
	return domain.Codigo{
		ID:              c.ID,
		Codigo:          c.Codigo,
		Estado:          c.Estado,
		FechaExpiracion: c.FechaExpiracion,
		GeneradoPor:     c.GeneradoPor,
		Meta:            c.Meta,
		FechaGeneracion: c.FechaGeneracion,
	}
}
