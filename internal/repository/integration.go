package repository

import (
	"context"
	"fmt"

	"github.com/epicorifa/rifa-api/internal/domain"
	"github.com/epicorifa/rifa-api/internal/repository/dao"
)

var ErrIntegrationNoEncontrada = dao.ErrIntegrationNoEncontrada

type IntegrationDAO interface {
	FindActiveByName(ctx context.Context, name string) (dao.Integration, error)
	InsertLog(ctx context.Context, log dao.IntegrationLog) error
	Ping(ctx context.Context) error
}

type IntegrationRepository struct {
	dao IntegrationDAO
}

func NewIntegrationRepository(dao IntegrationDAO) *IntegrationRepository {
	return &IntegrationRepository{
		dao: dao,
	}
}

func (r *IntegrationRepository) FindActiveByName(ctx context.Context, name string) (domain.Integration, error) {
	found, err := r.dao.FindActiveByName(ctx, name)
	if err != nil {
		return domain.Integration{}, fmt.Errorf("r.dao.FindActiveByName -> %w", err)
	}

	return domain.Integration{
		ID:         found.ID,
		Name:       found.Name,
		APIKeyHash: found.APIKeyHash,
		RevokedAt:  found.RevokedAt,
	}, nil
}

func (r *IntegrationRepository) LogCall(ctx context.Context, entry domain.IntegrationLog) error {
	err := r.dao.InsertLog(ctx, dao.IntegrationLog{
		TraceID:         entry.TraceID,
		Endpoint:        entry.Endpoint,
		Method:          entry.Method,
		IntegrationName: entry.IntegrationName,
		StatusCode:      entry.StatusCode,
		ErrorMessage:    entry.ErrorMessage,
		Metadata:        entry.Metadata,
	})
	if err != nil {
		return fmt.Errorf("r.dao.InsertLog -> %w", err)
	}

	return nil
}

func (r *IntegrationRepository) Ping(ctx context.Context) error {
	return r.dao.Ping(ctx)
}
