package core

import (
	"context"

	"github.com/securebi/securebi-backend/pkg/errs"
	"github.com/securebi/securebi-backend/pkg/service"
)

var _ service.MarketplaceService = &marketplaceService{}

type marketplaceService struct {
	dataSourceStorage service.DataSourceStorage
	dataCubeStorage   service.DataCubeStorage
	dashboardStorage  service.DashboardStorage
}

func (s *marketplaceService) GetMarketplace(ctx context.Context) (*service.Marketplace, error) {
	const op errs.Op = "marketplaceService.GetMarketplace"

	sources, err := s.dataSourceStorage.GetDataSources(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	tables, err := s.dataSourceStorage.GetAllTables(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	cubes, err := s.dataCubeStorage.GetDataCubes(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	dashboards, err := s.dashboardStorage.GetDashboards(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	marketplaceSources := make([]*service.MarketplaceDataSource, len(sources))
	for i, ds := range sources {
		t, ok := tables[ds.ID]
		if !ok {
			t = []*service.TableSchema{}
		}

		marketplaceSources[i] = &service.MarketplaceDataSource{
			DataSource: ds,
			Tables:     t,
		}
	}

	return &service.Marketplace{
		DataSources: marketplaceSources,
		DataCubes:   cubes,
		Dashboards:  dashboards,
	}, nil
}

func NewMarketplaceService(
	dataSourceStorage service.DataSourceStorage,
	dataCubeStorage service.DataCubeStorage,
	dashboardStorage service.DashboardStorage,
) *marketplaceService {
	return &marketplaceService{
		dataSourceStorage: dataSourceStorage,
		dataCubeStorage:   dataCubeStorage,
		dashboardStorage:  dashboardStorage,
	}
}
