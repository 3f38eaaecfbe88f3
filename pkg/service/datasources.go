package service

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type DataSourceType string

const (
	DataSourceTypePostgreSQL DataSourceType = "postgresql"
	DataSourceTypeMySQL      DataSourceType = "mysql"
	DataSourceTypeMongoDB    DataSourceType = "mongodb"
	DataSourceTypeSnowflake  DataSourceType = "snowflake"
	DataSourceTypeBigQuery   DataSourceType = "bigquery"
)

type DataSourceStatus string

const (
	DataSourceStatusConnected    DataSourceStatus = "connected"
	DataSourceStatusDisconnected DataSourceStatus = "disconnected"
	DataSourceStatusError        DataSourceStatus = "error"
)

// DefaultPreviewRows is the number of rows returned by a SQL preview when the
// caller does not ask for a specific amount.
const DefaultPreviewRows = 5

type DataSourceStorage interface {
	GetDataSources(ctx context.Context) ([]*DataSource, error)
	GetDataSource(ctx context.Context, id string) (*DataSource, error)
	CreateDataSource(ctx context.Context, id string, ds *NewDataSource) (*DataSource, error)
	UpdateDataSource(ctx context.Context, id string, input *DataSourceUpdate) (*DataSource, error)
	DeleteDataSource(ctx context.Context, id string) error
	GetTables(ctx context.Context, dataSourceID string) ([]*TableSchema, error)
	GetAllTables(ctx context.Context) (map[string][]*TableSchema, error)
	ReplaceTables(ctx context.Context, dataSourceID string, tables []*TableSchema, syncedAt time.Time) error
}

type BigQueryAPI interface {
	// GetSchema introspects the dataset configured on the data source.
	GetSchema(ctx context.Context, ds *DataSource) ([]*TableSchema, error)
	// GetDataset reads the metadata of the dataset configured on the data
	// source, it is never cached.
	GetDataset(ctx context.Context, ds *DataSource) (*BigQueryDataset, error)
	// Query runs sql against the project of the data source, returning at
	// most maxRows rows.
	Query(ctx context.Context, ds *DataSource, sql string, maxRows int) (*QueryResult, error)
	// InvalidateSchema drops anything remembered about the schema of the
	// data source.
	InvalidateSchema(dataSourceID string)
}

type DataSourceService interface {
	GetDataSources(ctx context.Context) ([]*DataSource, error)
	CreateDataSource(ctx context.Context, input *NewDataSource) (*DataSource, error)
	UpdateDataSource(ctx context.Context, id string, input *DataSourceUpdate) (*DataSource, error)
	DeleteDataSource(ctx context.Context, id string) error
	GetSchema(ctx context.Context, id string) (*SchemaResponse, error)
	UpdateSchema(ctx context.Context, id string, input *UpdateSchemaRequest) (*SchemaResponse, error)
	TestConnection(ctx context.Context, id string) (*TestConnectionResult, error)
	PreviewSQL(ctx context.Context, id string, input *SQLPreviewRequest) (*QueryResult, error)
}

// DataSource is a connection to a warehouse or database. The password holds
// the service account key for BigQuery sources and is never serialized.
type DataSource struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Type      DataSourceType   `json:"type"`
	Host      string           `json:"host"`
	Port      int              `json:"port"`
	Database  string           `json:"database"`
	Username  string           `json:"username"`
	Password  string           `json:"-"`
	Status    DataSourceStatus `json:"status"`
	LastSync  *time.Time       `json:"lastSync"`
	ProjectID *string          `json:"projectId"`
	Dataset   *string          `json:"dataset"`
	Location  *string          `json:"location"`
}

// Project is the BigQuery project of the data source, falling back to the
// host for sources created before the project had its own field.
func (d *DataSource) Project() string {
	if d.ProjectID != nil && *d.ProjectID != "" {
		return *d.ProjectID
	}

	return d.Host
}

func (d *DataSource) IsBigQuery() bool {
	return d.Type == DataSourceTypeBigQuery
}

type NewDataSource struct {
	Name      string         `json:"name"`
	Type      DataSourceType `json:"type"`
	Host      string         `json:"host"`
	Port      int            `json:"port"`
	Database  string         `json:"database"`
	Username  string         `json:"username"`
	Password  *string        `json:"password"`
	ProjectID *string        `json:"projectId"`
	Dataset   *string        `json:"dataset"`
	Location  *string        `json:"location"`
}

func (d NewDataSource) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required),
		validation.Field(&d.Type, validation.Required, validation.In(
			DataSourceTypePostgreSQL,
			DataSourceTypeMySQL,
			DataSourceTypeMongoDB,
			DataSourceTypeSnowflake,
			DataSourceTypeBigQuery,
		)),
		validation.Field(&d.Host, validation.Required),
		validation.Field(&d.Port, validation.Min(0), validation.Max(65535)),
		validation.Field(&d.Database, validation.Required),
		validation.Field(&d.Username, validation.Required),
	)
}

// DataSourceUpdate is a partial update, only the fields that are set are
// changed. An empty password leaves the stored one in place.
type DataSourceUpdate struct {
	Name      *string           `json:"name"`
	Host      *string           `json:"host"`
	Port      *int              `json:"port"`
	Database  *string           `json:"database"`
	Username  *string           `json:"username"`
	Password  *string           `json:"password"`
	Status    *DataSourceStatus `json:"status"`
	ProjectID *string           `json:"projectId"`
	Dataset   *string           `json:"dataset"`
	Location  *string           `json:"location"`
}

func (d DataSourceUpdate) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Port, validation.Min(0), validation.Max(65535)),
		validation.Field(&d.Status, validation.In(
			DataSourceStatusConnected,
			DataSourceStatusDisconnected,
			DataSourceStatusError,
		)),
	)
}

// Apply returns a copy of ds with the update applied.
func (d *DataSourceUpdate) Apply(ds *DataSource) *DataSource {
	out := *ds

	if d.Name != nil {
		out.Name = *d.Name
	}

	if d.Host != nil {
		out.Host = *d.Host
	}

	if d.Port != nil {
		out.Port = *d.Port
	}

	if d.Database != nil {
		out.Database = *d.Database
	}

	if d.Username != nil {
		out.Username = *d.Username
	}

	if d.Password != nil && *d.Password != "" {
		out.Password = *d.Password
	}

	if d.Status != nil {
		out.Status = *d.Status
	}

	if d.ProjectID != nil {
		out.ProjectID = d.ProjectID
	}

	if d.Dataset != nil {
		out.Dataset = d.Dataset
	}

	if d.Location != nil {
		out.Location = d.Location
	}

	return &out
}

// TableSchema is the cached description of a table or view in a data source.
type TableSchema struct {
	Name        string          `json:"name"`
	Schema      *string         `json:"schema"`
	Columns     []*ColumnSchema `json:"columns"`
	RowCount    int             `json:"row_count"`
	Description *string         `json:"description"`
}

func (t TableSchema) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Name, validation.Required),
		validation.Field(&t.RowCount, validation.Min(0)),
		validation.Field(&t.Columns),
	)
}

type ColumnSchema struct {
	Name        string            `json:"name"`
	Type        string            `json:"type"`
	PrimaryKey  bool              `json:"primary_key"`
	ForeignKey  map[string]string `json:"foreign_key,omitempty"`
	Description *string           `json:"description"`
}

func (c ColumnSchema) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Type, validation.Required),
	)
}

type SchemaResponse struct {
	Tables []*TableSchema `json:"tables"`
}

type UpdateSchemaRequest struct {
	Tables []*TableSchema `json:"tables"`
}

func (r UpdateSchemaRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Tables),
	)
}

type BigQueryDataset struct {
	ProjectID string
	DatasetID string
	Location  string
}

type TestConnectionResult struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Status  DataSourceStatus `json:"status"`
}

type SQLPreviewRequest struct {
	SQL     string `json:"sql"`
	MaxRows *int   `json:"maxRows"`
}

func (r SQLPreviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SQL, validation.Required),
		validation.Field(&r.MaxRows, validation.Min(1)),
	)
}

// Rows is the number of rows asked for, or DefaultPreviewRows.
func (r *SQLPreviewRequest) Rows() int {
	if r.MaxRows == nil {
		return DefaultPreviewRows
	}

	return *r.MaxRows
}

type QueryResult struct {
	Rows    []map[string]any `json:"rows"`
	Columns []string         `json:"columns"`
}
