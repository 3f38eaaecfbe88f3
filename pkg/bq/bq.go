package bq

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goccy/go-json"
	"github.com/gosimple/slug"
	"github.com/lithammer/shortuuid/v4"
	"github.com/rs/zerolog"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const (
	jobIDPrefix    = "securebi_"
	maxLabelLength = 63
)

var _ Operations = &Client{}

type Operations interface {
	GetDataset(ctx context.Context, conn Connection, datasetID string) (*Dataset, error)
	GetTables(ctx context.Context, conn Connection, datasetID string) ([]*Table, error)
	GetColumns(ctx context.Context, conn Connection, datasetID string) ([]*InformationSchemaColumn, error)
	Query(ctx context.Context, conn Connection, query string, maxRows int) (*QueryResult, error)
}

var (
	ErrNotExist           = errors.New("not exists")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidCredentials = errors.New("invalid service account key JSON")
	ErrMissingCredentials = errors.New("no credentials available")
)

type Client struct {
	endpoint             string
	enableAuthentication bool
	log                  zerolog.Logger
}

// Connection identifies the project a request runs in and the credentials
// used to reach it.
type Connection struct {
	ProjectID string
	Location  string
	// CredentialsJSON is an optional service account key, when empty the
	// application default credentials are used.
	CredentialsJSON []byte
	// Source is the name of the data source on whose behalf queries run,
	// it ends up as a job label.
	Source string
}

func (c Connection) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ProjectID, validation.Required),
	)
}

type TableType string

// RegularTable is the only table type with a row count, views and external
// tables report zero rows.
const RegularTable TableType = "TABLE"

type FieldType string

const (
	StringFieldType    FieldType = "STRING"
	BytesFieldType     FieldType = "BYTES"
	IntegerFieldType   FieldType = "INTEGER"
	FloatFieldType     FieldType = "FLOAT"
	BooleanFieldType   FieldType = "BOOLEAN"
	TimestampFieldType FieldType = "TIMESTAMP"
	RecordFieldType    FieldType = "RECORD"
	DateFieldType      FieldType = "DATE"
	NumericFieldType   FieldType = "NUMERIC"
	JSONFieldType      FieldType = "JSON"
)

type Dataset struct {
	ProjectID string
	DatasetID string

	Name        string
	Description string
	Location    string
}

type Table struct {
	ProjectID string
	DatasetID string
	TableID   string

	Name        string
	Description string
	Type        TableType
	NumRows     uint64

	Schema []*Column

	LastModified time.Time
	Created      time.Time
}

type Column struct {
	Name        string
	Type        FieldType
	Description string
}

// InformationSchemaColumn is a row from INFORMATION_SCHEMA.COLUMNS.
type InformationSchemaColumn struct {
	TableName       string `bigquery:"table_name"`
	ColumnName      string `bigquery:"column_name"`
	DataType        string `bigquery:"data_type"`
	IsNullable      string `bigquery:"is_nullable"`
	OrdinalPosition int64  `bigquery:"ordinal_position"`
}

type QueryResult struct {
	Columns []string
	Rows    []map[string]any
}

func (c *Client) GetDataset(ctx context.Context, conn Connection, datasetID string) (*Dataset, error) {
	client, err := c.clientFor(ctx, conn)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	meta, err := client.Dataset(datasetID).Metadata(ctx)
	if err != nil {
		return nil, mapAPIError(err, fmt.Sprintf("getting dataset metadata %s", datasetID))
	}

	return &Dataset{
		ProjectID:   client.Project(),
		DatasetID:   datasetID,
		Name:        meta.Name,
		Description: meta.Description,
		Location:    meta.Location,
	}, nil
}

func (c *Client) GetTables(ctx context.Context, conn Connection, datasetID string) ([]*Table, error) {
	client, err := c.clientFor(ctx, conn)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	tables := []*Table{}
	it := client.Dataset(datasetID).Tables(ctx)
	for {
		t, err := it.Next()
		if err != nil {
			if errors.Is(err, iterator.Done) {
				break
			}

			return nil, mapAPIError(err, "iterating tables")
		}

		table, err := c.getTableWithMetadata(ctx, client, datasetID, t.TableID)
		if err != nil {
			return nil, err
		}

		tables = append(tables, table)
	}

	return tables, nil
}

func fieldSchemaToSchema(fields []*bigquery.FieldSchema) []*Column {
	if len(fields) == 0 {
		return nil
	}

	schema := make([]*Column, len(fields))

	for i, f := range fields {
		schema[i] = &Column{
			Name:        f.Name,
			Type:        FieldType(f.Type),
			Description: f.Description,
		}
	}

	return schema
}

func (c *Client) getTableWithMetadata(ctx context.Context, client *bigquery.Client, datasetID, tableID string) (*Table, error) {
	meta, err := client.Dataset(datasetID).Table(tableID).Metadata(ctx)
	if err != nil {
		return nil, mapAPIError(err, fmt.Sprintf("getting table metadata %s.%s.%s", client.Project(), datasetID, tableID))
	}

	return &Table{
		ProjectID:    client.Project(),
		DatasetID:    datasetID,
		TableID:      tableID,
		Name:         meta.Name,
		Description:  meta.Description,
		Type:         TableType(meta.Type), // Don't bother with checking validity, coming from the API.
		NumRows:      meta.NumRows,
		Schema:       fieldSchemaToSchema(meta.Schema),
		LastModified: meta.LastModifiedTime,
		Created:      meta.CreationTime,
	}, nil
}

// GetColumns lists every column of every table and view in the dataset,
// ordered by table name and ordinal position.
func (c *Client) GetColumns(ctx context.Context, conn Connection, datasetID string) ([]*InformationSchemaColumn, error) {
	client, err := c.clientFor(ctx, conn)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	q := client.Query(fmt.Sprintf(
		"SELECT table_name, column_name, data_type, is_nullable, ordinal_position "+
			"FROM `%s.%s`.INFORMATION_SCHEMA.COLUMNS "+
			"ORDER BY table_name, ordinal_position",
		conn.ProjectID, datasetID,
	))
	c.configureJob(q, conn, "schema")

	it, err := q.Read(ctx)
	if err != nil {
		return nil, mapAPIError(err, fmt.Sprintf("reading information schema %s.%s", conn.ProjectID, datasetID))
	}

	var columns []*InformationSchemaColumn
	for {
		col := &InformationSchemaColumn{}

		err := it.Next(col)
		if err != nil {
			if errors.Is(err, iterator.Done) {
				break
			}

			return nil, mapAPIError(err, "iterating information schema")
		}

		columns = append(columns, col)
	}

	return columns, nil
}

// Query runs the statement and returns at most maxRows rows, a maxRows of
// zero or less returns every row.
func (c *Client) Query(ctx context.Context, conn Connection, query string, maxRows int) (*QueryResult, error) {
	client, err := c.clientFor(ctx, conn)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	q := client.Query(query)
	c.configureJob(q, conn, "preview")

	it, err := q.Read(ctx)
	if err != nil {
		return nil, mapAPIError(err, "running query")
	}

	result := &QueryResult{
		Columns: []string{},
		Rows:    []map[string]any{},
	}

	for {
		if maxRows > 0 && len(result.Rows) >= maxRows {
			break
		}

		row := map[string]bigquery.Value{}

		err := it.Next(&row)
		if err != nil {
			if errors.Is(err, iterator.Done) {
				break
			}

			return nil, mapAPIError(err, "iterating query results")
		}

		out := make(map[string]any, len(row))
		for k, v := range row {
			out[k] = toJSONValue(v)
		}

		result.Rows = append(result.Rows, out)
	}

	for _, f := range it.Schema {
		result.Columns = append(result.Columns, f.Name)
	}

	c.log.Debug().
		Str("project", conn.ProjectID).
		Int("rows", len(result.Rows)).
		Uint64("total_rows", it.TotalRows).
		Msg("query_completed")

	return result, nil
}

func (c *Client) configureJob(q *bigquery.Query, conn Connection, kind string) {
	q.JobID = jobIDPrefix + kind + "_" + strings.ToLower(shortuuid.New())

	if conn.Location != "" {
		q.Location = conn.Location
	}

	q.Labels = map[string]string{
		"application": "securebi",
	}

	if conn.Source != "" {
		label := slug.Make(conn.Source)
		if len(label) > maxLabelLength {
			label = label[:maxLabelLength]
		}

		q.Labels["data_source"] = label
	}
}

func toJSONValue(v bigquery.Value) any {
	switch val := v.(type) {
	case *big.Rat:
		f, _ := val.Float64()
		return f
	case civil.Date:
		return val.String()
	case civil.Time:
		return val.String()
	case civil.DateTime:
		return val.String()
	case []bigquery.Value:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = toJSONValue(item)
		}

		return out
	case map[string]bigquery.Value:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = toJSONValue(item)
		}

		return out
	default:
		return val
	}
}

func mapAPIError(err error, msg string) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusNotFound:
			return fmt.Errorf("%s: %w", msg, ErrNotExist)
		case http.StatusForbidden:
			return fmt.Errorf("%s: %w: %s", msg, ErrPermissionDenied, gerr.Message)
		}
	}

	return fmt.Errorf("%s: %w", msg, err)
}

func (c *Client) clientFor(ctx context.Context, conn Connection) (*bigquery.Client, error) {
	err := conn.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating connection: %w", err)
	}

	if len(conn.CredentialsJSON) > 0 && !json.Valid(conn.CredentialsJSON) {
		return nil, ErrInvalidCredentials
	}

	var options []option.ClientOption

	if c.endpoint != "" {
		options = append(options, option.WithEndpoint(c.endpoint))
	}

	switch {
	case !c.enableAuthentication:
		options = append(options, option.WithoutAuthentication())
	case len(conn.CredentialsJSON) > 0:
		options = append(options, option.WithCredentialsJSON(conn.CredentialsJSON))
	}

	client, err := bigquery.NewClient(ctx, conn.ProjectID, options...)
	if err != nil {
		if strings.Contains(err.Error(), "could not find default credentials") {
			return nil, fmt.Errorf("creating bigquery client for project %s: %w", conn.ProjectID, ErrMissingCredentials)
		}

		return nil, fmt.Errorf("creating bigquery client for project %s: %w", conn.ProjectID, err)
	}

	return client, nil
}

func NewClient(endpoint string, enableAuthentication bool, log zerolog.Logger) *Client {
	return &Client{
		endpoint:             endpoint,
		enableAuthentication: enableAuthentication,
		log:                  log,
	}
}
