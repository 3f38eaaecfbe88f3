package service

import (
	"context"
)

type MarketplaceService interface {
	GetMarketplace(ctx context.Context) (*Marketplace, error)
}

// Marketplace is every published data asset, for browsing.
type Marketplace struct {
	DataSources []*MarketplaceDataSource `json:"dataSources"`
	DataCubes   []*DataCube              `json:"dataCubes"`
	Dashboards  []*Dashboard             `json:"dashboards"`
}

type MarketplaceDataSource struct {
	*DataSource
	Tables []*TableSchema `json:"tables"`
}
