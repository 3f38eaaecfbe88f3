package postgres

import (
	"context"
	"fmt"

	"github.com/securebi/securebi-backend/pkg/cache"
	"github.com/securebi/securebi-backend/pkg/errs"
	"github.com/securebi/securebi-backend/pkg/service"
)

var _ service.BigQueryAPI = &bigQueryCache{}

const schemaKeyPrefix = "bigquery:schema:"

type bigQueryCache struct {
	api   service.BigQueryAPI
	cache cache.Cacher
}

func (b *bigQueryCache) GetSchema(ctx context.Context, ds *service.DataSource) ([]*service.TableSchema, error) {
	const op errs.Op = "bigQueryCache.GetSchema"

	key := schemaKey(ds.ID)

	tables := []*service.TableSchema{}
	valid := b.cache.Get(key, &tables)
	if valid {
		return tables, nil
	}

	tables, err := b.api.GetSchema(ctx, ds)
	if err != nil {
		return nil, errs.E(op, err)
	}

	b.cache.Set(key, tables)

	return tables, nil
}

// GetDataset always reaches BigQuery, it backs the connection test.
func (b *bigQueryCache) GetDataset(ctx context.Context, ds *service.DataSource) (*service.BigQueryDataset, error) {
	const op errs.Op = "bigQueryCache.GetDataset"

	dataset, err := b.api.GetDataset(ctx, ds)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return dataset, nil
}

// Query results are never cached.
func (b *bigQueryCache) Query(ctx context.Context, ds *service.DataSource, sql string, maxRows int) (*service.QueryResult, error) {
	const op errs.Op = "bigQueryCache.Query"

	result, err := b.api.Query(ctx, ds, sql, maxRows)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return result, nil
}

func (b *bigQueryCache) InvalidateSchema(dataSourceID string) {
	b.cache.Invalidate(schemaKey(dataSourceID))
	b.api.InvalidateSchema(dataSourceID)
}

func schemaKey(dataSourceID string) string {
	return fmt.Sprintf("%s%s", schemaKeyPrefix, dataSourceID)
}

func NewBigQueryCache(api service.BigQueryAPI, cache cache.Cacher) *bigQueryCache {
	return &bigQueryCache{
		api:   api,
		cache: cache,
	}
}
