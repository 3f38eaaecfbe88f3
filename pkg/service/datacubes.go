package service

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/securebi/securebi-backend/pkg/cubegen"
)

const (
	DefaultCubePreviewLimit = 100
	MaxCubePreviewLimit     = 500
)

// CubeQueryColumns are the columns of a cube search result, in order.
var CubeQueryColumns = []string{
	"id",
	"name",
	"description",
	"query",
	"dataSourceId",
	"dimensions",
	"measures",
	"metadata",
	"createdAt",
}

type DataCubeStorage interface {
	GetDataCubes(ctx context.Context) ([]*DataCube, error)
	GetDataCube(ctx context.Context, id string) (*DataCube, error)
	SearchDataCubes(ctx context.Context, query string) ([]*DataCube, error)
	CreateDataCube(ctx context.Context, id string, cube *NewDataCube) (*DataCube, error)
	UpdateDataCube(ctx context.Context, id string, cube *NewDataCube) (*DataCube, error)
	DeleteDataCube(ctx context.Context, id string) error
}

// CubeGenerationAPI turns a natural language request into a cube structure.
type CubeGenerationAPI interface {
	GenerateCube(ctx context.Context, req cubegen.Request) (*cubegen.CubeStructure, error)
}

type DataCubeService interface {
	GetDataCubes(ctx context.Context) ([]*DataCube, error)
	CreateDataCube(ctx context.Context, input *NewDataCube) (*DataCube, error)
	UpdateDataCube(ctx context.Context, id string, input *NewDataCube) (*DataCube, error)
	DeleteDataCube(ctx context.Context, id string) error
	PreviewDataCube(ctx context.Context, id string, input *CubePreviewRequest) (*QueryResult, error)
	GenerateDataCube(ctx context.Context, input *GenerateCubeRequest) (*cubegen.CubeStructure, error)
	QueryDataCubes(ctx context.Context, input *CubeQueryRequest) (*CubeQueryResult, error)
}

// DataCube is a named SQL query over a data source, with the fields that
// act as dimensions and measures.
type DataCube struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Query        string         `json:"query"`
	DataSourceID string         `json:"dataSourceId"`
	Dimensions   []string       `json:"dimensions"`
	Measures     []string       `json:"measures"`
	Metadata     map[string]any `json:"metadata"`
	CreatedAt    time.Time      `json:"createdAt"`
}

type NewDataCube struct {
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Query        string         `json:"query"`
	DataSourceID string         `json:"dataSourceId"`
	Dimensions   []string       `json:"dimensions"`
	Measures     []string       `json:"measures"`
	Metadata     map[string]any `json:"metadata"`
}

func (c NewDataCube) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Query, validation.Required),
		validation.Field(&c.DataSourceID, validation.Required),
		validation.Field(&c.Dimensions, validation.NotNil),
		validation.Field(&c.Measures, validation.NotNil),
	)
}

type CubePreviewRequest struct {
	Limit  *int `json:"limit"`
	Offset int  `json:"offset"`
}

// Window returns the limit clamped to 1..MaxCubePreviewLimit and the offset
// clamped to zero or more.
func (r *CubePreviewRequest) Window() (limit, offset int) {
	limit = DefaultCubePreviewLimit
	if r.Limit != nil {
		limit = *r.Limit
	}

	limit = max(1, min(limit, MaxCubePreviewLimit))
	offset = max(0, r.Offset)

	return limit, offset
}

type GenerateCubeRequest struct {
	UserRequest  string `json:"userRequest"`
	DataSourceID string `json:"dataSourceId"`
}

func (r GenerateCubeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserRequest, validation.Required),
		validation.Field(&r.DataSourceID, validation.Required),
	)
}

type CubeQueryRequest struct {
	Query string `json:"query"`
}

type CubeQueryResult struct {
	Data    []*DataCube `json:"data"`
	Columns []string    `json:"columns"`
}
