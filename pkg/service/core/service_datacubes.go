package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/securebi/securebi-backend/pkg/cubegen"
	"github.com/securebi/securebi-backend/pkg/errs"
	"github.com/securebi/securebi-backend/pkg/service"
)

var _ service.DataCubeService = &dataCubeService{}

type dataCubeService struct {
	dataCubeStorage   service.DataCubeStorage
	dataSourceStorage service.DataSourceStorage
	bigQueryAPI       service.BigQueryAPI
	cubeGenerationAPI service.CubeGenerationAPI
}

func (s *dataCubeService) GetDataCubes(ctx context.Context) ([]*service.DataCube, error) {
	const op errs.Op = "dataCubeService.GetDataCubes"

	cubes, err := s.dataCubeStorage.GetDataCubes(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return cubes, nil
}

func (s *dataCubeService) CreateDataCube(ctx context.Context, input *service.NewDataCube) (*service.DataCube, error) {
	const op errs.Op = "dataCubeService.CreateDataCube"

	_, err := s.dataSourceStorage.GetDataSource(ctx, input.DataSourceID)
	if err != nil {
		return nil, errs.E(op, errs.Parameter("dataSourceId"), err)
	}

	cube, err := s.dataCubeStorage.CreateDataCube(ctx, newID(dataCubeIDPrefix), input)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return cube, nil
}

func (s *dataCubeService) UpdateDataCube(ctx context.Context, id string, input *service.NewDataCube) (*service.DataCube, error) {
	const op errs.Op = "dataCubeService.UpdateDataCube"

	cube, err := s.dataCubeStorage.UpdateDataCube(ctx, id, input)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return cube, nil
}

func (s *dataCubeService) DeleteDataCube(ctx context.Context, id string) error {
	const op errs.Op = "dataCubeService.DeleteDataCube"

	err := s.dataCubeStorage.DeleteDataCube(ctx, id)
	if err != nil {
		return errs.E(op, err)
	}

	return nil
}

func (s *dataCubeService) PreviewDataCube(ctx context.Context, id string, input *service.CubePreviewRequest) (*service.QueryResult, error) {
	const op errs.Op = "dataCubeService.PreviewDataCube"

	cube, err := s.dataCubeStorage.GetDataCube(ctx, id)
	if err != nil {
		return nil, errs.E(op, err)
	}

	ds, err := s.dataSourceStorage.GetDataSource(ctx, cube.DataSourceID)
	if err != nil {
		if errs.KindIs(errs.NotExist, err) {
			return nil, errs.E(errs.NotExist, op, errs.Parameter("dataSourceId"), "Data source not found for this cube")
		}

		return nil, errs.E(op, err)
	}

	if !ds.IsBigQuery() {
		return nil, errs.E(errs.InvalidRequest, op, errs.Parameter("type"), "Cube preview is currently only supported for BigQuery data sources.")
	}

	limit, offset := input.Window()

	result, err := s.bigQueryAPI.Query(ctx, ds, previewSQL(cube.Query, limit, offset), limit)
	if err != nil {
		switch {
		case errs.KindIs(errs.Unauthenticated, err):
			return nil, errs.E(errs.InvalidRequest, op, "Service account credentials not found. Configure GOOGLE_APPLICATION_CREDENTIALS or add a key to the data source.")
		case errs.KindIs(errs.InvalidRequest, err):
			return nil, errs.E(op, err)
		default:
			return nil, errs.E(errs.InvalidRequest, op, errs.Errorf("Failed to execute cube preview: %s", errs.Message(err)))
		}
	}

	return result, nil
}

// previewSQL wraps query in a subquery so it can be paged.
func previewSQL(query string, limit, offset int) string {
	inner := strings.TrimSpace(query)
	inner = strings.TrimSuffix(inner, ";")

	return fmt.Sprintf("SELECT * FROM (\n%s\n) AS _preview\nLIMIT %d OFFSET %d", inner, limit, offset)
}

func (s *dataCubeService) GenerateDataCube(ctx context.Context, input *service.GenerateCubeRequest) (*cubegen.CubeStructure, error) {
	const op errs.Op = "dataCubeService.GenerateDataCube"

	ds, err := s.dataSourceStorage.GetDataSource(ctx, input.DataSourceID)
	if err != nil {
		return nil, errs.E(op, errs.Parameter("dataSourceId"), err)
	}

	tables, err := sourceTables(ctx, s.dataSourceStorage, s.bigQueryAPI, ds)
	if err != nil {
		return nil, errs.E(op, err)
	}

	if len(tables) == 0 {
		return nil, errs.E(errs.InvalidRequest, op, errs.Parameter("dataSourceId"), "No tables or views found for this data source. Please sync the schema first or ensure the dataset has tables/views.")
	}

	cube, err := s.cubeGenerationAPI.GenerateCube(ctx, cubegen.Request{
		UserRequest: input.UserRequest,
		Source:      sourceDescriptor(ds),
		Tables:      tableDescriptors(tables),
	})
	if err != nil {
		return nil, errs.E(op, err)
	}

	if cube.Metadata == nil {
		cube.Metadata = map[string]any{}
	}

	return cube, nil
}

func sourceDescriptor(ds *service.DataSource) cubegen.SourceDescriptor {
	database := ds.Database
	if database == "" && ds.Dataset != nil {
		database = *ds.Dataset
	}

	return cubegen.SourceDescriptor{
		Name:     ds.Name,
		Type:     string(ds.Type),
		Database: database,
	}
}

func tableDescriptors(tables []*service.TableSchema) []cubegen.TableDescriptor {
	out := make([]cubegen.TableDescriptor, len(tables))

	for i, t := range tables {
		columns := make([]cubegen.ColumnDescriptor, len(t.Columns))
		for j, c := range t.Columns {
			columns[j] = cubegen.ColumnDescriptor{
				Name:        c.Name,
				Type:        c.Type,
				PrimaryKey:  c.PrimaryKey,
				Description: deref(c.Description),
			}
		}

		out[i] = cubegen.TableDescriptor{
			Name:        t.Name,
			Schema:      deref(t.Schema),
			Columns:     columns,
			RowCount:    int64(t.RowCount),
			Description: deref(t.Description),
		}
	}

	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func (s *dataCubeService) QueryDataCubes(ctx context.Context, input *service.CubeQueryRequest) (*service.CubeQueryResult, error) {
	const op errs.Op = "dataCubeService.QueryDataCubes"

	cubes, err := s.dataCubeStorage.SearchDataCubes(ctx, input.Query)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return &service.CubeQueryResult{
		Data:    cubes,
		Columns: service.CubeQueryColumns,
	}, nil
}

func NewDataCubeService(
	dataCubeStorage service.DataCubeStorage,
	dataSourceStorage service.DataSourceStorage,
	bigQueryAPI service.BigQueryAPI,
	cubeGenerationAPI service.CubeGenerationAPI,
) *dataCubeService {
	return &dataCubeService{
		dataCubeStorage:   dataCubeStorage,
		dataSourceStorage: dataSourceStorage,
		bigQueryAPI:       bigQueryAPI,
		cubeGenerationAPI: cubeGenerationAPI,
	}
}
