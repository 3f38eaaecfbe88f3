package core_test

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/securebi/securebi-backend/pkg/cubegen"
	"github.com/securebi/securebi-backend/pkg/errs"
	"github.com/securebi/securebi-backend/pkg/service"
	"github.com/securebi/securebi-backend/pkg/service/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func salesCube() *service.DataCube {
	return &service.DataCube{
		ID:           "cube-1",
		Name:         "Sales by region",
		Description:  "Total sales per region",
		Query:        "SELECT region, SUM(amount) AS total FROM sales GROUP BY region;",
		DataSourceID: "source-1",
		Dimensions:   []string{"region"},
		Measures:     []string{"total"},
		Metadata:     map[string]any{},
		CreatedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestDataCubeService_CreateDataCube(t *testing.T) {
	ctx := context.Background()
	input := &service.NewDataCube{
		Name:         "Sales by region",
		Query:        "SELECT 1",
		DataSourceID: "source-1",
		Dimensions:   []string{},
		Measures:     []string{},
	}

	t.Run("creates cube", func(t *testing.T) {
		sources := &dataSourceStorageMock{}
		sources.On("GetDataSource", ctx, "source-1").Return(bigQuerySource(), nil)

		cubes := &dataCubeStorageMock{}
		cubes.On("CreateDataCube", ctx, mock.MatchedBy(regexp.MustCompile(`^cube-[0-9a-f]{12}$`).MatchString), input).Return(salesCube(), nil)

		got, err := core.NewDataCubeService(cubes, sources, &bigQueryAPIMock{}, &cubeGenerationAPIMock{}).CreateDataCube(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, salesCube(), got)
		cubes.AssertExpectations(t)
	})

	t.Run("unknown data source", func(t *testing.T) {
		sources := &dataSourceStorageMock{}
		sources.On("GetDataSource", ctx, "source-1").Return((*service.DataSource)(nil), errs.E(errs.NotExist, errs.Parameter("id"), "Data source not found"))

		cubes := &dataCubeStorageMock{}

		_, err := core.NewDataCubeService(cubes, sources, &bigQueryAPIMock{}, &cubeGenerationAPIMock{}).CreateDataCube(ctx, input)
		require.Error(t, err)
		assert.True(t, errs.KindIs(errs.NotExist, err))
		assert.Equal(t, "Data source not found", errs.Message(err))
		cubes.AssertNotCalled(t, "CreateDataCube", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDataCubeService_PreviewDataCube(t *testing.T) {
	ctx := context.Background()
	result := &service.QueryResult{
		Rows:    []map[string]any{{"region": "north", "total": 10.5}},
		Columns: []string{"region", "total"},
	}

	testCases := []struct {
		name      string
		input     *service.CubePreviewRequest
		expectSQL string
		expectMax int
	}{
		{
			name:      "defaults",
			input:     &service.CubePreviewRequest{},
			expectSQL: "SELECT * FROM (\nSELECT region, SUM(amount) AS total FROM sales GROUP BY region\n) AS _preview\nLIMIT 100 OFFSET 0",
			expectMax: 100,
		},
		{
			name:      "clamped window",
			input:     &service.CubePreviewRequest{Limit: intPtr(10000), Offset: -3},
			expectSQL: "SELECT * FROM (\nSELECT region, SUM(amount) AS total FROM sales GROUP BY region\n) AS _preview\nLIMIT 500 OFFSET 0",
			expectMax: 500,
		},
		{
			name:      "paged",
			input:     &service.CubePreviewRequest{Limit: intPtr(25), Offset: 50},
			expectSQL: "SELECT * FROM (\nSELECT region, SUM(amount) AS total FROM sales GROUP BY region\n) AS _preview\nLIMIT 25 OFFSET 50",
			expectMax: 25,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cubes := &dataCubeStorageMock{}
			cubes.On("GetDataCube", ctx, "cube-1").Return(salesCube(), nil)

			sources := &dataSourceStorageMock{}
			sources.On("GetDataSource", ctx, "source-1").Return(bigQuerySource(), nil)

			api := &bigQueryAPIMock{}
			api.On("Query", ctx, bigQuerySource(), tc.expectSQL, tc.expectMax).Return(result, nil)

			got, err := core.NewDataCubeService(cubes, sources, api, &cubeGenerationAPIMock{}).PreviewDataCube(ctx, "cube-1", tc.input)
			require.NoError(t, err)
			assert.Equal(t, result, got)
			api.AssertExpectations(t)
		})
	}
}

func TestDataCubeService_PreviewDataCube_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing data source", func(t *testing.T) {
		cubes := &dataCubeStorageMock{}
		cubes.On("GetDataCube", ctx, "cube-1").Return(salesCube(), nil)

		sources := &dataSourceStorageMock{}
		sources.On("GetDataSource", ctx, "source-1").Return((*service.DataSource)(nil), errs.E(errs.NotExist, "Data source not found"))

		_, err := core.NewDataCubeService(cubes, sources, &bigQueryAPIMock{}, &cubeGenerationAPIMock{}).PreviewDataCube(ctx, "cube-1", &service.CubePreviewRequest{})
		require.Error(t, err)
		assert.True(t, errs.KindIs(errs.NotExist, err))
		assert.Equal(t, "Data source not found for this cube", errs.Message(err))
	})

	t.Run("only BigQuery", func(t *testing.T) {
		cube := salesCube()
		cube.DataSourceID = "source-2"

		cubes := &dataCubeStorageMock{}
		cubes.On("GetDataCube", ctx, "cube-1").Return(cube, nil)

		sources := &dataSourceStorageMock{}
		sources.On("GetDataSource", ctx, "source-2").Return(postgresSource(), nil)

		_, err := core.NewDataCubeService(cubes, sources, &bigQueryAPIMock{}, &cubeGenerationAPIMock{}).PreviewDataCube(ctx, "cube-1", &service.CubePreviewRequest{})
		require.Error(t, err)
		assert.True(t, errs.KindIs(errs.InvalidRequest, err))
		assert.Equal(t, "Cube preview is currently only supported for BigQuery data sources.", errs.Message(err))
	})

	t.Run("query failure", func(t *testing.T) {
		cubes := &dataCubeStorageMock{}
		cubes.On("GetDataCube", ctx, "cube-1").Return(salesCube(), nil)

		sources := &dataSourceStorageMock{}
		sources.On("GetDataSource", ctx, "source-1").Return(bigQuerySource(), nil)

		api := &bigQueryAPIMock{}
		api.On("Query", ctx, bigQuerySource(), mock.Anything, 100).Return((*service.QueryResult)(nil), errs.E(errs.IO, fmt.Errorf("Syntax error")))

		_, err := core.NewDataCubeService(cubes, sources, api, &cubeGenerationAPIMock{}).PreviewDataCube(ctx, "cube-1", &service.CubePreviewRequest{})
		require.Error(t, err)
		assert.True(t, errs.KindIs(errs.InvalidRequest, err))
		assert.Equal(t, "Failed to execute cube preview: Syntax error", errs.Message(err))
	})
}

func TestDataCubeService_GenerateDataCube(t *testing.T) {
	ctx := context.Background()
	input := &service.GenerateCubeRequest{
		UserRequest:  "Total sales per region",
		DataSourceID: "source-1",
	}

	generated := &cubegen.CubeStructure{
		Name:       "Sales by region",
		Query:      "SELECT region, SUM(amount) AS total FROM `test-project.warehouse.sales` GROUP BY region",
		Dimensions: []string{"region"},
		Measures:   []string{"total"},
	}

	expectRequest := cubegen.Request{
		UserRequest: "Total sales per region",
		Source: cubegen.SourceDescriptor{
			Name:     "Sales Warehouse",
			Type:     "bigquery",
			Database: "warehouse",
		},
		Tables: []cubegen.TableDescriptor{
			{
				Name:   "sales",
				Schema: "warehouse",
				Columns: []cubegen.ColumnDescriptor{
					{Name: "region", Type: "STRING"},
					{Name: "amount", Type: "FLOAT64"},
				},
			},
		},
	}

	sources := &dataSourceStorageMock{}
	sources.On("GetDataSource", ctx, "source-1").Return(bigQuerySource(), nil)

	api := &bigQueryAPIMock{}
	api.On("GetSchema", ctx, bigQuerySource()).Return(salesTables(), nil)

	gen := &cubeGenerationAPIMock{}
	gen.On("GenerateCube", ctx, expectRequest).Return(generated, nil)

	cubes := &dataCubeStorageMock{}

	got, err := core.NewDataCubeService(cubes, sources, api, gen).GenerateDataCube(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "Sales by region", got.Name)
	assert.Equal(t, map[string]any{}, got.Metadata)
	gen.AssertExpectations(t)
	cubes.AssertNotCalled(t, "CreateDataCube", mock.Anything, mock.Anything, mock.Anything)
}

func TestDataCubeService_GenerateDataCube_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("no tables", func(t *testing.T) {
		sources := &dataSourceStorageMock{}
		sources.On("GetDataSource", ctx, "source-2").Return(postgresSource(), nil)
		sources.On("GetTables", ctx, "source-2").Return([]*service.TableSchema{}, nil)

		gen := &cubeGenerationAPIMock{}

		_, err := core.NewDataCubeService(&dataCubeStorageMock{}, sources, &bigQueryAPIMock{}, gen).GenerateDataCube(ctx, &service.GenerateCubeRequest{
			UserRequest:  "Orders per day",
			DataSourceID: "source-2",
		})
		require.Error(t, err)
		assert.True(t, errs.KindIs(errs.InvalidRequest, err))
		assert.Equal(t, "No tables or views found for this data source. Please sync the schema first or ensure the dataset has tables/views.", errs.Message(err))
		gen.AssertNotCalled(t, "GenerateCube", mock.Anything, mock.Anything)
	})

	t.Run("unknown data source", func(t *testing.T) {
		sources := &dataSourceStorageMock{}
		sources.On("GetDataSource", ctx, "source-9").Return((*service.DataSource)(nil), errs.E(errs.NotExist, "Data source not found"))

		_, err := core.NewDataCubeService(&dataCubeStorageMock{}, sources, &bigQueryAPIMock{}, &cubeGenerationAPIMock{}).GenerateDataCube(ctx, &service.GenerateCubeRequest{
			UserRequest:  "Orders per day",
			DataSourceID: "source-9",
		})
		require.Error(t, err)
		assert.True(t, errs.KindIs(errs.NotExist, err))
	})

	t.Run("generation failure keeps its kind", func(t *testing.T) {
		sources := &dataSourceStorageMock{}
		sources.On("GetDataSource", ctx, "source-2").Return(postgresSource(), nil)
		sources.On("GetTables", ctx, "source-2").Return(salesTables(), nil)

		gen := &cubeGenerationAPIMock{}
		gen.On("GenerateCube", ctx, mock.Anything).Return((*cubegen.CubeStructure)(nil), errs.E(errs.IO, fmt.Errorf("model unavailable")))

		_, err := core.NewDataCubeService(&dataCubeStorageMock{}, sources, &bigQueryAPIMock{}, gen).GenerateDataCube(ctx, &service.GenerateCubeRequest{
			UserRequest:  "Orders per day",
			DataSourceID: "source-2",
		})
		require.Error(t, err)
		assert.True(t, errs.KindIs(errs.IO, err))
		assert.Equal(t, 502, errs.HTTPStatusCode(err))
	})
}

func TestDataCubeService_QueryDataCubes(t *testing.T) {
	ctx := context.Background()

	cubes := &dataCubeStorageMock{}
	cubes.On("SearchDataCubes", ctx, "sales").Return([]*service.DataCube{salesCube()}, nil)

	got, err := core.NewDataCubeService(cubes, &dataSourceStorageMock{}, &bigQueryAPIMock{}, &cubeGenerationAPIMock{}).QueryDataCubes(ctx, &service.CubeQueryRequest{Query: "sales"})
	require.NoError(t, err)
	assert.Equal(t, []*service.DataCube{salesCube()}, got.Data)
	assert.Equal(t, []string{"id", "name", "description", "query", "dataSourceId", "dimensions", "measures", "metadata", "createdAt"}, got.Columns)
}
