package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/epicorifa/rifa-api/internal/domain"
	"github.com/epicorifa/rifa-api/internal/repository/dao"
)

var (
	ErrCorreoRegistrado    = dao.ErrCorreoRegistrado
	ErrClienteNoEncontrado = dao.ErrClienteNoEncontrado
)

type ClienteDAO interface {
	FindByID(ctx context.Context, id uint) (dao.Cliente, error)
	FindByCorreo(ctx context.Context, correo string) (dao.Cliente, error)
	List(ctx context.Context, search string, sedeID uint, limit, offset int) ([]dao.ClienteRow, int64, error)
}

type ClienteRepository struct {
	dao ClienteDAO
}

func NewClienteRepository(dao ClienteDAO) *ClienteRepository {
	return &ClienteRepository{
		dao: dao,
	}
}

func (r *ClienteRepository) FindByID(ctx context.Context, id uint) (domain.Cliente, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Cliente{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return clienteDaoToDomain(found), nil
}

func (r *ClienteRepository) FindByCorreo(ctx context.Context, correo string) (domain.Cliente, error) {
	found, err := r.dao.FindByCorreo(ctx, correo)
	if err != nil {
		return domain.Cliente{}, fmt.Errorf("r.dao.FindByCorreo -> %w", err)
	}

	return clienteDaoToDomain(found), nil
}

func (r *ClienteRepository) List(ctx context.Context, filter domain.ClienteFilter) (domain.ClientePage, error) {
	offset := (filter.Page - 1) * filter.Limit

	rows, total, err := r.dao.List(ctx, filter.Search, filter.SedeID, filter.Limit, offset)
	if err != nil {
		return domain.ClientePage{}, fmt.Errorf("r.dao.List -> %w", err)
	}

	clientes := make([]domain.ClienteResumen, 0, len(rows))
	for _, row := range rows {
		clientes = append(clientes, clienteRowToResumen(row))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return domain.ClientePage{
		Clientes:   clientes,
		Total:      total,
		Page:       filter.Page,
		TotalPages: totalPages,
	}, nil
}

func clienteDaoToDomain(c dao.Cliente) domain.Cliente {
	return domain.Cliente{
		ID:            c.ID,
		Nombre:        c.Nombre,
		Apellidos:     c.Apellidos,
		Telefono:      c.Telefono,
		Correo:        c.Correo,
		PasswordHash:  c.PasswordHash,
		SedeID:        c.SedeID,
		FechaRegistro: c.FechaRegistro,
	}
}

func clienteRowToResumen(row dao.ClienteRow) domain.ClienteResumen {
	var codigos []string
	if row.Numeros != "" {
		codigos = strings.Split(row.Numeros, ",")
	} else {
		codigos = []string{}
	}

	return domain.ClienteResumen{
		ID:            row.ID,
		Nombre:        strings.TrimSpace(row.Nombre + " " + row.Apellidos),
		Correo:        row.Correo,
		Telefono:      row.Telefono,
		Sede:          row.Sede,
		Codigos:       codigos,
		FechaRegistro: row.FechaRegistro,
	}
}
