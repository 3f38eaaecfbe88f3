package core

import (
	"strings"

	"github.com/google/uuid"
	"github.com/securebi/securebi-backend/pkg/service"
	"github.com/securebi/securebi-backend/pkg/service/core/api"
	"github.com/securebi/securebi-backend/pkg/service/core/storage"
)

const (
	dataSourceIDPrefix  = "source"
	dataCubeIDPrefix    = "cube"
	dashboardIDPrefix   = "dashboard"
	entitlementIDPrefix = "ent"
	appConfigIDPrefix   = "config"
)

// newID returns prefix followed by the first 12 hex digits of a random uuid.
func newID(prefix string) string {
	return prefix + "-" + strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}

type Services struct {
	DataSourceService  service.DataSourceService
	DataCubeService    service.DataCubeService
	DashboardService   service.DashboardService
	EntitlementService service.EntitlementService
	MarketplaceService service.MarketplaceService
	AppConfigService   service.AppConfigService
}

func NewServices(
	stores *storage.Stores,
	clients *api.Clients,
) *Services {
	return &Services{
		DataSourceService: NewDataSourceService(
			stores.DataSourceStorage,
			clients.BigQueryAPI,
		),
		DataCubeService: NewDataCubeService(
			stores.DataCubeStorage,
			stores.DataSourceStorage,
			clients.BigQueryAPI,
			clients.CubeGenerationAPI,
		),
		DashboardService: NewDashboardService(
			stores.DashboardStorage,
			stores.DataCubeStorage,
			clients.ChatAPI,
		),
		EntitlementService: NewEntitlementService(
			stores.EntitlementStorage,
			stores.DataSourceStorage,
			stores.DataCubeStorage,
			stores.DashboardStorage,
		),
		MarketplaceService: NewMarketplaceService(
			stores.DataSourceStorage,
			stores.DataCubeStorage,
			stores.DashboardStorage,
		),
		AppConfigService: NewAppConfigService(stores.AppConfigStorage),
	}
}
