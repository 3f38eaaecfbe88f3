package core

import (
	"context"
	"fmt"

	"github.com/securebi/securebi-backend/pkg/errs"
	"github.com/securebi/securebi-backend/pkg/service"
)

var _ service.EntitlementService = &entitlementService{}

type entitlementService struct {
	entitlementStorage service.EntitlementStorage
	dataSourceStorage  service.DataSourceStorage
	dataCubeStorage    service.DataCubeStorage
	dashboardStorage   service.DashboardStorage
}

func (s *entitlementService) GetEntitledResources(ctx context.Context, user *service.User) ([]*service.EntitledResource, error) {
	const op errs.Op = "entitlementService.GetEntitledResources"

	entitlements, err := s.entitlementStorage.GetEntitlementsForUser(ctx, user.ID)
	if err != nil {
		return nil, errs.E(op, errs.UserName(user.ID), err)
	}

	resources := make([]*service.EntitledResource, 0, len(entitlements))

	for _, e := range entitlements {
		name, err := s.resourceName(ctx, e.ResourceType, e.ResourceID)
		if err != nil {
			return nil, errs.E(op, errs.UserName(user.ID), err)
		}

		resources = append(resources, &service.EntitledResource{
			ResourceType: e.ResourceType,
			ResourceID:   e.ResourceID,
			ResourceName: name,
			Permissions:  e.Permissions,
			GrantedAt:    e.GrantedAt,
		})
	}

	return resources, nil
}

// resourceName looks up the name of the entitled resource, falling back to a
// generic name when it no longer exists.
func (s *entitlementService) resourceName(ctx context.Context, resourceType service.ResourceType, id string) (string, error) {
	const op errs.Op = "entitlementService.resourceName"

	var (
		name     string
		fallback string
		err      error
	)

	switch resourceType {
	case service.ResourceTypeDataSource:
		fallback = fmt.Sprintf("Data Source %s", id)

		var ds *service.DataSource
		ds, err = s.dataSourceStorage.GetDataSource(ctx, id)
		if err == nil {
			name = ds.Name
		}
	case service.ResourceTypeDataCube:
		fallback = fmt.Sprintf("Data Cube %s", id)

		var cube *service.DataCube
		cube, err = s.dataCubeStorage.GetDataCube(ctx, id)
		if err == nil {
			name = cube.Name
		}
	case service.ResourceTypeDashboard:
		fallback = fmt.Sprintf("Dashboard %s", id)

		var dashboard *service.Dashboard
		dashboard, err = s.dashboardStorage.GetDashboard(ctx, id)
		if err == nil {
			name = dashboard.Name
		}
	default:
		return "Unknown Resource", nil
	}

	if err != nil {
		if errs.KindIs(errs.NotExist, err) {
			return fallback, nil
		}

		return "", errs.E(op, err)
	}

	return name, nil
}

func (s *entitlementService) CreateEntitlement(ctx context.Context, input *service.NewEntitlement) (*service.Entitlement, error) {
	const op errs.Op = "entitlementService.CreateEntitlement"

	entitlement, err := s.entitlementStorage.CreateEntitlement(ctx, newID(entitlementIDPrefix), input)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return entitlement, nil
}

func (s *entitlementService) DeleteEntitlement(ctx context.Context, id string) error {
	const op errs.Op = "entitlementService.DeleteEntitlement"

	err := s.entitlementStorage.DeleteEntitlement(ctx, id)
	if err != nil {
		return errs.E(op, err)
	}

	return nil
}

func NewEntitlementService(
	entitlementStorage service.EntitlementStorage,
	dataSourceStorage service.DataSourceStorage,
	dataCubeStorage service.DataCubeStorage,
	dashboardStorage service.DashboardStorage,
) *entitlementService {
	return &entitlementService{
		entitlementStorage: entitlementStorage,
		dataSourceStorage:  dataSourceStorage,
		dataCubeStorage:    dataCubeStorage,
		dashboardStorage:   dashboardStorage,
	}
}
