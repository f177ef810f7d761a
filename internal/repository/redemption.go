package repository

import (
	"context"
	"fmt"

	"github.com/epicorifa/rifa-api/internal/domain"
	"github.com/epicorifa/rifa-api/internal/repository/dao"
)

type RedemptionDAO interface {
	RedeemNewCliente(ctx context.Context, cliente dao.Cliente, codigo string) (dao.Cliente, dao.Participacion, error)
	RedeemExistingCliente(ctx context.Context, codigo string, clienteID uint) (dao.Participacion, error)
}

type RedemptionRepository struct {
	dao RedemptionDAO
}

func NewRedemptionRepository(dao RedemptionDAO) *RedemptionRepository {
	return &RedemptionRepository{
		dao: dao,
	}
}

// RegisterAndRedeem creates the cliente and consumes the code atomically.
// The cliente's PasswordHash must already be hashed.
func (r *RedemptionRepository) RegisterAndRedeem(ctx context.Context, cliente domain.Cliente, codigo string) (domain.Cliente, domain.Participacion, error) {
	created, participacion, err := r.dao.RedeemNewCliente(ctx, dao.Cliente{
		Nombre:       cliente.Nombre,
		Apellidos:    cliente.Apellidos,
		Telefono:     cliente.Telefono,
		Correo:       cliente.Correo,
		PasswordHash: cliente.PasswordHash,
		SedeID:       cliente.SedeID,
	}, codigo)
	if err != nil {
		return domain.Cliente{}, domain.Participacion{}, fmt.Errorf("r.dao.RedeemNewCliente -> %w", err)
	}

	return clienteDaoToDomain(created), participacionDaoToDomain(participacion), nil
}

func (r *RedemptionRepository) Redeem(ctx context.Context, codigo string, clienteID uint) (domain.Participacion, error) {
	participacion, err := r.dao.RedeemExistingCliente(ctx, codigo, clienteID)
	if err != nil {
		return domain.Participacion{}, fmt.Errorf("r.dao.RedeemExistingCliente -> %w", err)
	}

	return participacionDaoToDomain(participacion), nil
}

func participacionDaoToDomain(p dao.Participacion) domain.Participacion {
	return domain.Participacion{
		ID:              p.ID,
		ClienteID:       p.ClienteID,
		CodigoID:        p.CodigoID,
		NumeroRifa:      p.NumeroRifa,
		FechaAsignacion: p.FechaAsignacion,
	}
}
