package postgres

import (
	"context"

	"github.com/securebi/securebi-backend/pkg/database/gensql"
	"github.com/securebi/securebi-backend/pkg/errs"
	"github.com/securebi/securebi-backend/pkg/service"
)

type EntitlementQueries interface {
	GetEntitlementsForUser(ctx context.Context, userID string) ([]gensql.DataEntitlement, error)
	CreateEntitlement(ctx context.Context, arg gensql.CreateEntitlementParams) (gensql.DataEntitlement, error)
	DeleteEntitlement(ctx context.Context, id string) (int64, error)
}

var _ service.EntitlementStorage = &entitlementStorage{}

type entitlementStorage struct {
	queries EntitlementQueries
}

func (s *entitlementStorage) GetEntitlementsForUser(ctx context.Context, userID string) ([]*service.Entitlement, error) {
	const op errs.Op = "entitlementStorage.GetEntitlementsForUser"

	raw, err := s.queries.GetEntitlementsForUser(ctx, userID)
	if err != nil {
		return nil, errs.E(errs.Database, op, err, errs.UserName(userID))
	}

	entitlements := make([]*service.Entitlement, len(raw))
	for i, e := range raw {
		entitlements[i], err = From(DataEntitlement(e))
		if err != nil {
			return nil, errs.E(errs.Internal, op, err, errs.UserName(userID))
		}
	}

	return entitlements, nil
}

func (s *entitlementStorage) CreateEntitlement(ctx context.Context, id string, entitlement *service.NewEntitlement) (*service.Entitlement, error) {
	const op errs.Op = "entitlementStorage.CreateEntitlement"

	permissions := make([]string, len(entitlement.Permissions))
	for i, p := range entitlement.Permissions {
		permissions[i] = string(p)
	}

	raw, err := s.queries.CreateEntitlement(ctx, gensql.CreateEntitlementParams{
		ID:           id,
		UserID:       entitlement.UserID,
		ResourceType: string(entitlement.ResourceType),
		ResourceID:   entitlement.ResourceID,
		Permissions:  permissions,
		GrantedBy:    entitlement.GrantedBy,
	})
	if err != nil {
		return nil, errs.E(errs.Database, op, err, errs.UserName(entitlement.UserID))
	}

	out, err := From(DataEntitlement(raw))
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	return out, nil
}

func (s *entitlementStorage) DeleteEntitlement(ctx context.Context, id string) error {
	const op errs.Op = "entitlementStorage.DeleteEntitlement"

	n, err := s.queries.DeleteEntitlement(ctx, id)
	if err != nil {
		return errs.E(errs.Database, op, err, errs.Parameter("id"))
	}

	if n == 0 {
		return errs.E(errs.NotExist, op, errs.Parameter("id"), "Entitlement not found")
	}

	return nil
}

type DataEntitlement gensql.DataEntitlement

func (e DataEntitlement) To() (*service.Entitlement, error) {
	permissions := make([]service.Permission, len(e.Permissions))
	for i, p := range e.Permissions {
		permissions[i] = service.Permission(p)
	}

	return &service.Entitlement{
		ID:           e.ID,
		UserID:       e.UserID,
		ResourceType: service.ResourceType(e.ResourceType),
		ResourceID:   e.ResourceID,
		Permissions:  permissions,
		GrantedAt:    e.GrantedAt,
		GrantedBy:    e.GrantedBy,
	}, nil
}

func NewEntitlementStorage(queries EntitlementQueries) *entitlementStorage {
	return &entitlementStorage{
		queries: queries,
	}
}
