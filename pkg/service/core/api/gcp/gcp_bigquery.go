package gcp

import (
	"context"
	"errors"

	"github.com/securebi/securebi-backend/pkg/bq"
	"github.com/securebi/securebi-backend/pkg/errs"
	"github.com/securebi/securebi-backend/pkg/service"
)

type bigQueryAPI struct {
	client          bq.Operations
	defaultLocation string
}

var _ service.BigQueryAPI = &bigQueryAPI{}

// GetSchema lists the tables and views of the data source dataset with their
// columns, read from INFORMATION_SCHEMA in a single query. Row counts and
// descriptions come from the table metadata.
func (a *bigQueryAPI) GetSchema(ctx context.Context, ds *service.DataSource) ([]*service.TableSchema, error) {
	const op errs.Op = "bigQueryAPI.GetSchema"

	err := requireDataset(op, ds)
	if err != nil {
		return nil, err
	}

	conn := a.connection(ds)

	columns, err := a.client.GetColumns(ctx, conn, *ds.Dataset)
	if err != nil {
		return nil, errs.E(op, mapError(err))
	}

	metadata, err := a.client.GetTables(ctx, conn, *ds.Dataset)
	if err != nil {
		return nil, errs.E(op, mapError(err))
	}

	meta := make(map[string]*bq.Table, len(metadata))
	for _, m := range metadata {
		meta[m.TableID] = m
	}

	tables := []*service.TableSchema{}
	index := map[string]*service.TableSchema{}

	for _, c := range columns {
		t, ok := index[c.TableName]
		if !ok {
			t = &service.TableSchema{
				Name:    c.TableName,
				Schema:  ds.Dataset,
				Columns: []*service.ColumnSchema{},
			}
			index[c.TableName] = t
			tables = append(tables, t)
		}

		t.Columns = append(t.Columns, &service.ColumnSchema{
			Name: c.ColumnName,
			Type: c.DataType,
		})
	}

	for _, t := range tables {
		if m, ok := meta[t.Name]; ok {
			withMetadata(t, m)
		}
	}

	return tables, nil
}

func withMetadata(t *service.TableSchema, m *bq.Table) {
	if m.Type == bq.RegularTable {
		t.RowCount = int(m.NumRows)
	}

	t.Description = optional(m.Description)

	descriptions := make(map[string]string, len(m.Schema))
	for _, c := range m.Schema {
		descriptions[c.Name] = c.Description
	}

	for _, c := range t.Columns {
		c.Description = optional(descriptions[c.Name])
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func (a *bigQueryAPI) GetDataset(ctx context.Context, ds *service.DataSource) (*service.BigQueryDataset, error) {
	const op errs.Op = "bigQueryAPI.GetDataset"

	err := requireDataset(op, ds)
	if err != nil {
		return nil, err
	}

	dataset, err := a.client.GetDataset(ctx, a.connection(ds), *ds.Dataset)
	if err != nil {
		return nil, errs.E(op, mapError(err))
	}

	return &service.BigQueryDataset{
		ProjectID: dataset.ProjectID,
		DatasetID: dataset.DatasetID,
		Location:  dataset.Location,
	}, nil
}

func requireDataset(op errs.Op, ds *service.DataSource) error {
	if ds.Dataset == nil || *ds.Dataset == "" {
		return errs.E(errs.InvalidRequest, op, errs.Parameter("dataset"), "BigQuery dataset is not configured for this data source")
	}

	return nil
}

func (a *bigQueryAPI) Query(ctx context.Context, ds *service.DataSource, sql string, maxRows int) (*service.QueryResult, error) {
	const op errs.Op = "bigQueryAPI.Query"

	result, err := a.client.Query(ctx, a.connection(ds), sql, maxRows)
	if err != nil {
		return nil, errs.E(op, mapError(err))
	}

	return &service.QueryResult{
		Rows:    result.Rows,
		Columns: result.Columns,
	}, nil
}

// InvalidateSchema is a no-op, schemas are always read live at this layer.
func (a *bigQueryAPI) InvalidateSchema(string) {}

func (a *bigQueryAPI) connection(ds *service.DataSource) bq.Connection {
	location := a.defaultLocation
	if ds.Location != nil && *ds.Location != "" {
		location = *ds.Location
	}

	var credentials []byte
	if ds.Password != "" {
		credentials = []byte(ds.Password)
	}

	return bq.Connection{
		ProjectID:       ds.Project(),
		Location:        location,
		CredentialsJSON: credentials,
		Source:          ds.Name,
	}
}

// mapError gives the bq client errors a kind, the callers decide on the
// message shown to the user.
func mapError(err error) error {
	switch {
	case errors.Is(err, bq.ErrInvalidCredentials):
		return errs.E(errs.InvalidRequest, errs.Parameter("password"), "Invalid service account key JSON")
	case errors.Is(err, bq.ErrMissingCredentials):
		return errs.E(errs.Unauthenticated, err)
	case errors.Is(err, bq.ErrPermissionDenied):
		return errs.E(errs.Unauthorized, err)
	case errors.Is(err, bq.ErrNotExist):
		return errs.E(errs.NotExist, err)
	default:
		return errs.E(errs.IO, err)
	}
}

func NewBigQueryAPI(client bq.Operations, defaultLocation string) *bigQueryAPI {
	return &bigQueryAPI{
		client:          client,
		defaultLocation: defaultLocation,
	}
}
