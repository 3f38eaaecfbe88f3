package storage

import (
	"github.com/securebi/securebi-backend/pkg/database"
	"github.com/securebi/securebi-backend/pkg/service"
	"github.com/securebi/securebi-backend/pkg/service/core/storage/postgres"
)

type Stores struct {
	DataSourceStorage  service.DataSourceStorage
	DataCubeStorage    service.DataCubeStorage
	DashboardStorage   service.DashboardStorage
	EntitlementStorage service.EntitlementStorage
	AppConfigStorage   service.AppConfigStorage
}

func NewStores(db *database.Repo) *Stores {
	return &Stores{
		DataSourceStorage:  postgres.NewDataSourceStorage(db.Querier, database.WithTx[postgres.DataSourceQueries](db)),
		DataCubeStorage:    postgres.NewDataCubeStorage(db.Querier),
		DashboardStorage:   postgres.NewDashboardStorage(db.Querier),
		EntitlementStorage: postgres.NewEntitlementStorage(db.Querier),
		AppConfigStorage:   postgres.NewAppConfigStorage(db.Querier),
	}
}
