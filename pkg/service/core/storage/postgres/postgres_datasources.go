package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/securebi/securebi-backend/pkg/database"
	"github.com/securebi/securebi-backend/pkg/database/gensql"
	"github.com/securebi/securebi-backend/pkg/errs"
	"github.com/securebi/securebi-backend/pkg/service"
)

const dataSourceNotFound = "Data source not found"

type DataSourceQueries interface {
	GetDataSources(ctx context.Context) ([]gensql.DataSource, error)
	GetDataSource(ctx context.Context, id string) (gensql.DataSource, error)
	CreateDataSource(ctx context.Context, arg gensql.CreateDataSourceParams) (gensql.DataSource, error)
	UpdateDataSource(ctx context.Context, arg gensql.UpdateDataSourceParams) (gensql.DataSource, error)
	UpdateDataSourceLastSync(ctx context.Context, arg gensql.UpdateDataSourceLastSyncParams) (int64, error)
	DeleteDataSource(ctx context.Context, id string) (int64, error)
	GetTablesForDataSource(ctx context.Context, dataSourceID string) ([]gensql.Table, error)
	GetAllTables(ctx context.Context) ([]gensql.Table, error)
	CreateTable(ctx context.Context, arg gensql.CreateTableParams) (gensql.Table, error)
	DeleteTablesForDataSource(ctx context.Context, dataSourceID string) error
}

var _ service.DataSourceStorage = &dataSourceStorage{}

type DataSourceQueriesWithTxFn func() (DataSourceQueries, database.Transacter, error)

type dataSourceStorage struct {
	queries  DataSourceQueries
	withTxFn DataSourceQueriesWithTxFn
}

func (s *dataSourceStorage) GetDataSources(ctx context.Context) ([]*service.DataSource, error) {
	const op errs.Op = "dataSourceStorage.GetDataSources"

	raw, err := s.queries.GetDataSources(ctx)
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	sources, err := From(DataSources(raw))
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	return sources, nil
}

func (s *dataSourceStorage) GetDataSource(ctx context.Context, id string) (*service.DataSource, error) {
	const op errs.Op = "dataSourceStorage.GetDataSource"

	raw, err := s.queries.GetDataSource(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.E(errs.NotExist, op, errs.Parameter("id"), dataSourceNotFound)
		}

		return nil, errs.E(errs.Database, op, err, errs.Parameter("id"))
	}

	ds, err := From(DataSource(raw))
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	return ds, nil
}

func (s *dataSourceStorage) CreateDataSource(ctx context.Context, id string, ds *service.NewDataSource) (*service.DataSource, error) {
	const op errs.Op = "dataSourceStorage.CreateDataSource"

	password := sql.NullString{}
	if ds.Password != nil {
		password = stringToNullString(*ds.Password)
	}

	raw, err := s.queries.CreateDataSource(ctx, gensql.CreateDataSourceParams{
		ID:        id,
		Name:      ds.Name,
		Type:      string(ds.Type),
		Host:      ds.Host,
		Port:      int32(ds.Port),
		Database:  ds.Database,
		Username:  ds.Username,
		Password:  password,
		Status:    string(service.DataSourceStatusDisconnected),
		ProjectID: ptrToNullString(ds.ProjectID),
		Dataset:   ptrToNullString(ds.Dataset),
		Location:  ptrToNullString(ds.Location),
	})
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	out, err := From(DataSource(raw))
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	return out, nil
}

func (s *dataSourceStorage) UpdateDataSource(ctx context.Context, id string, input *service.DataSourceUpdate) (*service.DataSource, error) {
	const op errs.Op = "dataSourceStorage.UpdateDataSource"

	q, tx, err := s.withTxFn()
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}
	defer tx.Rollback()

	raw, err := q.GetDataSource(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.E(errs.NotExist, op, errs.Parameter("id"), dataSourceNotFound)
		}

		return nil, errs.E(errs.Database, op, err, errs.Parameter("id"))
	}

	current, err := From(DataSource(raw))
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	updated := input.Apply(current)

	raw, err = q.UpdateDataSource(ctx, gensql.UpdateDataSourceParams{
		ID:        id,
		Name:      updated.Name,
		Host:      updated.Host,
		Port:      int32(updated.Port),
		Database:  updated.Database,
		Username:  updated.Username,
		Password:  stringToNullString(updated.Password),
		Status:    string(updated.Status),
		ProjectID: ptrToNullString(updated.ProjectID),
		Dataset:   ptrToNullString(updated.Dataset),
		Location:  ptrToNullString(updated.Location),
	})
	if err != nil {
		return nil, errs.E(errs.Database, op, err, errs.Parameter("id"))
	}

	err = tx.Commit()
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	out, err := From(DataSource(raw))
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	return out, nil
}

func (s *dataSourceStorage) DeleteDataSource(ctx context.Context, id string) error {
	const op errs.Op = "dataSourceStorage.DeleteDataSource"

	n, err := s.queries.DeleteDataSource(ctx, id)
	if err != nil {
		return errs.E(errs.Database, op, err, errs.Parameter("id"))
	}

	if n == 0 {
		return errs.E(errs.NotExist, op, errs.Parameter("id"), dataSourceNotFound)
	}

	return nil
}

func (s *dataSourceStorage) GetTables(ctx context.Context, dataSourceID string) ([]*service.TableSchema, error) {
	const op errs.Op = "dataSourceStorage.GetTables"

	raw, err := s.queries.GetTablesForDataSource(ctx, dataSourceID)
	if err != nil {
		return nil, errs.E(errs.Database, op, err, errs.Parameter("id"))
	}

	tables, err := From(Tables(raw))
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	return tables, nil
}

func (s *dataSourceStorage) GetAllTables(ctx context.Context) (map[string][]*service.TableSchema, error) {
	const op errs.Op = "dataSourceStorage.GetAllTables"

	raw, err := s.queries.GetAllTables(ctx)
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	out := map[string][]*service.TableSchema{}

	for _, r := range raw {
		table, err := From(Table(r))
		if err != nil {
			return nil, errs.E(errs.Internal, op, err)
		}

		out[r.DataSourceID] = append(out[r.DataSourceID], table)
	}

	return out, nil
}

func (s *dataSourceStorage) ReplaceTables(ctx context.Context, dataSourceID string, tables []*service.TableSchema, syncedAt time.Time) error {
	const op errs.Op = "dataSourceStorage.ReplaceTables"

	q, tx, err := s.withTxFn()
	if err != nil {
		return errs.E(errs.Database, op, err)
	}
	defer tx.Rollback()

	err = q.DeleteTablesForDataSource(ctx, dataSourceID)
	if err != nil {
		return errs.E(errs.Database, op, err, errs.Parameter("id"))
	}

	for _, t := range tables {
		columns, err := toJSONB(t.Columns)
		if err != nil {
			return errs.E(errs.Internal, op, err, errs.Parameter("columns"))
		}

		_, err = q.CreateTable(ctx, gensql.CreateTableParams{
			ID:           tableID(),
			DataSourceID: dataSourceID,
			Name:         t.Name,
			SchemaName:   ptrToNullString(t.Schema),
			RowCount:     int64(t.RowCount),
			Description:  ptrToNullString(t.Description),
			Columns:      columns,
		})
		if err != nil {
			if isPQError(err, pqForeignKeyViolation) {
				return errs.E(errs.NotExist, op, errs.Parameter("id"), dataSourceNotFound)
			}

			return errs.E(errs.Database, op, err, errs.Parameter("tables"))
		}
	}

	n, err := q.UpdateDataSourceLastSync(ctx, gensql.UpdateDataSourceLastSyncParams{
		ID:       dataSourceID,
		LastSync: sql.NullTime{Time: syncedAt, Valid: true},
	})
	if err != nil {
		return errs.E(errs.Database, op, err, errs.Parameter("id"))
	}

	if n == 0 {
		return errs.E(errs.NotExist, op, errs.Parameter("id"), dataSourceNotFound)
	}

	err = tx.Commit()
	if err != nil {
		return errs.E(errs.Database, op, err)
	}

	return nil
}

func tableID() string {
	return fmt.Sprintf("table-%s", strings.ReplaceAll(uuid.New().String(), "-", "")[:12])
}

type DataSource gensql.DataSource

func (d DataSource) To() (*service.DataSource, error) {
	return &service.DataSource{
		ID:        d.ID,
		Name:      d.Name,
		Type:      service.DataSourceType(d.Type),
		Host:      d.Host,
		Port:      int(d.Port),
		Database:  d.Database,
		Username:  d.Username,
		Password:  d.Password.String,
		Status:    service.DataSourceStatus(d.Status),
		LastSync:  nullTimeToPtr(d.LastSync),
		ProjectID: nullStringToPtr(d.ProjectID),
		Dataset:   nullStringToPtr(d.Dataset),
		Location:  nullStringToPtr(d.Location),
	}, nil
}

type DataSources []gensql.DataSource

func (d DataSources) To() ([]*service.DataSource, error) {
	sources := make([]*service.DataSource, len(d))

	for i, raw := range d {
		ds, err := From(DataSource(raw))
		if err != nil {
			return nil, err
		}

		sources[i] = ds
	}

	return sources, nil
}

type Table gensql.Table

func (t Table) To() (*service.TableSchema, error) {
	const op errs.Op = "Table.To"

	columns, err := fromJSONB[*service.ColumnSchema](t.Columns)
	if err != nil {
		return nil, errs.E(op, fmt.Errorf("decoding columns of table %s: %w", t.Name, err))
	}

	return &service.TableSchema{
		Name:        t.Name,
		Schema:      nullStringToPtr(t.SchemaName),
		Columns:     columns,
		RowCount:    int(t.RowCount),
		Description: nullStringToPtr(t.Description),
	}, nil
}

type Tables []gensql.Table

func (t Tables) To() ([]*service.TableSchema, error) {
	const op errs.Op = "Tables.To"

	tables := make([]*service.TableSchema, len(t))

	for i, raw := range t {
		table, err := From(Table(raw))
		if err != nil {
			return nil, errs.E(op, err)
		}

		tables[i] = table
	}

	return tables, nil
}

func NewDataSourceStorage(queries DataSourceQueries, withTxFn DataSourceQueriesWithTxFn) *dataSourceStorage {
	return &dataSourceStorage{
		queries:  queries,
		withTxFn: withTxFn,
	}
}
