package handlers

import (
	"github.com/securebi/securebi-backend/pkg/service/core"
)

type Handlers struct {
	DataSourcesHandler  *dataSourcesHandler
	DataCubesHandler    *dataCubesHandler
	DashboardsHandler   *dashboardsHandler
	EntitlementsHandler *entitlementsHandler
	MarketplaceHandler  *marketplaceHandler
	AppConfigHandler    *appConfigHandler
	StatusHandler       *statusHandler
}

func NewHandlers(s *core.Services) *Handlers {
	return &Handlers{
		DataSourcesHandler:  NewDataSourcesHandler(s.DataSourceService),
		DataCubesHandler:    NewDataCubesHandler(s.DataCubeService),
		DashboardsHandler:   NewDashboardsHandler(s.DashboardService),
		EntitlementsHandler: NewEntitlementsHandler(s.EntitlementService),
		MarketplaceHandler:  NewMarketplaceHandler(s.MarketplaceService),
		AppConfigHandler:    NewAppConfigHandler(s.AppConfigService),
		StatusHandler:       NewStatusHandler(),
	}
}
