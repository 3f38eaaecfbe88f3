package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/securebi/securebi-backend/pkg/errs"
	"github.com/securebi/securebi-backend/pkg/service"
)

var _ service.DataSourceService = &dataSourceService{}

const (
	connectionTestMessage     = "Connection test placeholder succeeded (no live DB call)."
	missingCredentialsMessage = "Service account credentials not found. Either provide a service account key in the data source or configure GOOGLE_APPLICATION_CREDENTIALS."
)

type dataSourceService struct {
	dataSourceStorage service.DataSourceStorage
	bigQueryAPI       service.BigQueryAPI
}

func (s *dataSourceService) GetDataSources(ctx context.Context) ([]*service.DataSource, error) {
	const op errs.Op = "dataSourceService.GetDataSources"

	sources, err := s.dataSourceStorage.GetDataSources(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return sources, nil
}

func (s *dataSourceService) CreateDataSource(ctx context.Context, input *service.NewDataSource) (*service.DataSource, error) {
	const op errs.Op = "dataSourceService.CreateDataSource"

	ds, err := s.dataSourceStorage.CreateDataSource(ctx, newID(dataSourceIDPrefix), input)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return ds, nil
}

func (s *dataSourceService) UpdateDataSource(ctx context.Context, id string, input *service.DataSourceUpdate) (*service.DataSource, error) {
	const op errs.Op = "dataSourceService.UpdateDataSource"

	ds, err := s.dataSourceStorage.UpdateDataSource(ctx, id, input)
	if err != nil {
		return nil, errs.E(op, err)
	}

	s.bigQueryAPI.InvalidateSchema(id)

	return ds, nil
}

func (s *dataSourceService) DeleteDataSource(ctx context.Context, id string) error {
	const op errs.Op = "dataSourceService.DeleteDataSource"

	err := s.dataSourceStorage.DeleteDataSource(ctx, id)
	if err != nil {
		return errs.E(op, err)
	}

	s.bigQueryAPI.InvalidateSchema(id)

	return nil
}

func (s *dataSourceService) GetSchema(ctx context.Context, id string) (*service.SchemaResponse, error) {
	const op errs.Op = "dataSourceService.GetSchema"

	ds, err := s.dataSourceStorage.GetDataSource(ctx, id)
	if err != nil {
		return nil, errs.E(op, err)
	}

	tables, err := sourceTables(ctx, s.dataSourceStorage, s.bigQueryAPI, ds)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return &service.SchemaResponse{Tables: tables}, nil
}

// sourceTables returns the live schema of BigQuery sources, and the cached
// schema of every other kind of source.
func sourceTables(
	ctx context.Context,
	storage service.DataSourceStorage,
	bigQueryAPI service.BigQueryAPI,
	ds *service.DataSource,
) ([]*service.TableSchema, error) {
	const op errs.Op = "core.sourceTables"

	if !ds.IsBigQuery() {
		tables, err := storage.GetTables(ctx, ds.ID)
		if err != nil {
			return nil, errs.E(op, err)
		}

		return tables, nil
	}

	tables, err := bigQueryAPI.GetSchema(ctx, ds)
	if err != nil {
		switch {
		case errs.KindIs(errs.Unauthenticated, err):
			return nil, errs.E(errs.InvalidRequest, op, missingCredentialsMessage)
		case errs.KindIs(errs.Unauthorized, err):
			return nil, errs.E(errs.Unauthorized, op, "BigQuery permission denied while reading schema. The service account must have permission to create query jobs in this project (e.g. roles/bigquery.jobUser or roles/bigquery.user) and read the dataset.")
		case errs.KindIs(errs.InvalidRequest, err):
			return nil, errs.E(op, err)
		default:
			return nil, errs.E(errs.IO, op, errs.Errorf("Failed to fetch BigQuery schema: %s", errs.Message(err)))
		}
	}

	return tables, nil
}

func (s *dataSourceService) UpdateSchema(ctx context.Context, id string, input *service.UpdateSchemaRequest) (*service.SchemaResponse, error) {
	const op errs.Op = "dataSourceService.UpdateSchema"

	_, err := s.dataSourceStorage.GetDataSource(ctx, id)
	if err != nil {
		return nil, errs.E(op, err)
	}

	tables := input.Tables
	if tables == nil {
		tables = []*service.TableSchema{}
	}

	err = s.dataSourceStorage.ReplaceTables(ctx, id, tables, time.Now())
	if err != nil {
		return nil, errs.E(op, err)
	}

	s.bigQueryAPI.InvalidateSchema(id)

	return &service.SchemaResponse{Tables: tables}, nil
}

// TestConnection reads the dataset metadata of BigQuery sources, other kinds
// of sources are only checked to exist.
func (s *dataSourceService) TestConnection(ctx context.Context, id string) (*service.TestConnectionResult, error) {
	const op errs.Op = "dataSourceService.TestConnection"

	ds, err := s.dataSourceStorage.GetDataSource(ctx, id)
	if err != nil {
		return nil, errs.E(op, err)
	}

	if !ds.IsBigQuery() {
		return &service.TestConnectionResult{
			Success: true,
			Message: connectionTestMessage,
			Status:  service.DataSourceStatusConnected,
		}, nil
	}

	dataset, err := s.bigQueryAPI.GetDataset(ctx, ds)
	if err != nil {
		return &service.TestConnectionResult{
			Success: false,
			Message: connectionFailure(ds, err),
			Status:  service.DataSourceStatusError,
		}, nil
	}

	return &service.TestConnectionResult{
		Success: true,
		Message: fmt.Sprintf("Connected to BigQuery dataset %s.%s.", dataset.ProjectID, dataset.DatasetID),
		Status:  service.DataSourceStatusConnected,
	}, nil
}

func connectionFailure(ds *service.DataSource, err error) string {
	switch {
	case errs.KindIs(errs.Unauthenticated, err):
		return missingCredentialsMessage
	case errs.KindIs(errs.Unauthorized, err):
		return "BigQuery permission denied while reading the dataset. The service account must be able to read the dataset metadata."
	case errs.KindIs(errs.NotExist, err):
		return fmt.Sprintf("BigQuery dataset %s was not found in project %s.", *ds.Dataset, ds.Project())
	case errs.KindIs(errs.InvalidRequest, err):
		return errs.Message(err)
	default:
		return fmt.Sprintf("Failed to connect to BigQuery: %s", errs.Message(err))
	}
}

func (s *dataSourceService) PreviewSQL(ctx context.Context, id string, input *service.SQLPreviewRequest) (*service.QueryResult, error) {
	const op errs.Op = "dataSourceService.PreviewSQL"

	ds, err := s.dataSourceStorage.GetDataSource(ctx, id)
	if err != nil {
		return nil, errs.E(op, err)
	}

	if !ds.IsBigQuery() {
		return nil, errs.E(errs.InvalidRequest, op, errs.Parameter("type"), "SQL preview is currently only supported for BigQuery data sources.")
	}

	rows := input.Rows()
	sql := limitSQL(input.SQL, rows)

	result, err := s.bigQueryAPI.Query(ctx, ds, sql, rows)
	if err != nil {
		switch {
		case errs.KindIs(errs.Unauthenticated, err):
			return nil, errs.E(errs.InvalidRequest, op, missingCredentialsMessage)
		case errs.KindIs(errs.InvalidRequest, err):
			return nil, errs.E(op, err)
		default:
			return nil, errs.E(errs.InvalidRequest, op, errs.Errorf("Failed to execute SQL preview: %s", errs.Message(err)))
		}
	}

	return result, nil
}

// limitSQL trims sql and appends a LIMIT clause unless it already has one.
func limitSQL(sql string, rows int) string {
	sql = strings.TrimSpace(sql)

	if strings.Contains(strings.ToLower(sql), "limit") {
		return sql
	}

	return fmt.Sprintf("%s\nLIMIT %d", sql, rows)
}

func NewDataSourceService(storage service.DataSourceStorage, bigQueryAPI service.BigQueryAPI) *dataSourceService {
	return &dataSourceService{
		dataSourceStorage: storage,
		bigQueryAPI:       bigQueryAPI,
	}
}
