package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/securebi/securebi-backend/pkg/database/gensql"
	"github.com/securebi/securebi-backend/pkg/errs"
	"github.com/securebi/securebi-backend/pkg/service"
	"github.com/sqlc-dev/pqtype"
)

const dataCubeNotFound = "Data cube not found"

type DataCubeQueries interface {
	GetDataCubes(ctx context.Context) ([]gensql.DataCube, error)
	GetDataCube(ctx context.Context, id string) (gensql.DataCube, error)
	SearchDataCubes(ctx context.Context, query string) ([]gensql.DataCube, error)
	CreateDataCube(ctx context.Context, arg gensql.CreateDataCubeParams) (gensql.DataCube, error)
	UpdateDataCube(ctx context.Context, arg gensql.UpdateDataCubeParams) (gensql.DataCube, error)
	DeleteDataCube(ctx context.Context, id string) (int64, error)
}

var _ service.DataCubeStorage = &dataCubeStorage{}

type dataCubeStorage struct {
	queries DataCubeQueries
}

func (s *dataCubeStorage) GetDataCubes(ctx context.Context) ([]*service.DataCube, error) {
	const op errs.Op = "dataCubeStorage.GetDataCubes"

	raw, err := s.queries.GetDataCubes(ctx)
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	cubes, err := From(DataCubes(raw))
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	return cubes, nil
}

func (s *dataCubeStorage) GetDataCube(ctx context.Context, id string) (*service.DataCube, error) {
	const op errs.Op = "dataCubeStorage.GetDataCube"

	raw, err := s.queries.GetDataCube(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.E(errs.NotExist, op, errs.Parameter("id"), dataCubeNotFound)
		}

		return nil, errs.E(errs.Database, op, err, errs.Parameter("id"))
	}

	cube, err := From(DataCube(raw))
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	return cube, nil
}

func (s *dataCubeStorage) SearchDataCubes(ctx context.Context, query string) ([]*service.DataCube, error) {
	const op errs.Op = "dataCubeStorage.SearchDataCubes"

	raw, err := s.queries.SearchDataCubes(ctx, query)
	if err != nil {
		return nil, errs.E(errs.Database, op, err, errs.Parameter("query"))
	}

	cubes, err := From(DataCubes(raw))
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	return cubes, nil
}

func (s *dataCubeStorage) CreateDataCube(ctx context.Context, id string, cube *service.NewDataCube) (*service.DataCube, error) {
	const op errs.Op = "dataCubeStorage.CreateDataCube"

	params, err := cubeColumns(cube)
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	raw, err := s.queries.CreateDataCube(ctx, gensql.CreateDataCubeParams{
		ID:           id,
		Name:         cube.Name,
		Description:  cube.Description,
		Query:        cube.Query,
		DataSourceID: cube.DataSourceID,
		Dimensions:   params.dimensions,
		Measures:     params.measures,
		Metadata:     params.metadata,
	})
	if err != nil {
		if isPQError(err, pqForeignKeyViolation) {
			return nil, errs.E(errs.NotExist, op, errs.Parameter("dataSourceId"), dataSourceNotFound)
		}

		return nil, errs.E(errs.Database, op, err)
	}

	out, err := From(DataCube(raw))
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	return out, nil
}

func (s *dataCubeStorage) UpdateDataCube(ctx context.Context, id string, cube *service.NewDataCube) (*service.DataCube, error) {
	const op errs.Op = "dataCubeStorage.UpdateDataCube"

	params, err := cubeColumns(cube)
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	raw, err := s.queries.UpdateDataCube(ctx, gensql.UpdateDataCubeParams{
		ID:           id,
		Name:         cube.Name,
		Description:  cube.Description,
		Query:        cube.Query,
		DataSourceID: cube.DataSourceID,
		Dimensions:   params.dimensions,
		Measures:     params.measures,
		Metadata:     params.metadata,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.E(errs.NotExist, op, errs.Parameter("id"), dataCubeNotFound)
		}

		if isPQError(err, pqForeignKeyViolation) {
			return nil, errs.E(errs.NotExist, op, errs.Parameter("dataSourceId"), dataSourceNotFound)
		}

		return nil, errs.E(errs.Database, op, err, errs.Parameter("id"))
	}

	out, err := From(DataCube(raw))
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	return out, nil
}

func (s *dataCubeStorage) DeleteDataCube(ctx context.Context, id string) error {
	const op errs.Op = "dataCubeStorage.DeleteDataCube"

	n, err := s.queries.DeleteDataCube(ctx, id)
	if err != nil {
		return errs.E(errs.Database, op, err, errs.Parameter("id"))
	}

	if n == 0 {
		return errs.E(errs.NotExist, op, errs.Parameter("id"), dataCubeNotFound)
	}

	return nil
}

type cubeJSONColumns struct {
	dimensions json.RawMessage
	measures   json.RawMessage
	metadata   pqtype.NullRawMessage
}

func cubeColumns(cube *service.NewDataCube) (*cubeJSONColumns, error) {
	dimensions, err := toJSONB(cube.Dimensions)
	if err != nil {
		return nil, fmt.Errorf("encoding dimensions: %w", err)
	}

	measures, err := toJSONB(cube.Measures)
	if err != nil {
		return nil, fmt.Errorf("encoding measures: %w", err)
	}

	metadata := pqtype.NullRawMessage{}

	if cube.Metadata != nil {
		raw, err := json.Marshal(cube.Metadata)
		if err != nil {
			return nil, fmt.Errorf("encoding metadata: %w", err)
		}

		metadata = pqtype.NullRawMessage{RawMessage: raw, Valid: true}
	}

	return &cubeJSONColumns{
		dimensions: dimensions,
		measures:   measures,
		metadata:   metadata,
	}, nil
}

type DataCube gensql.DataCube

func (c DataCube) To() (*service.DataCube, error) {
	const op errs.Op = "DataCube.To"

	dimensions, err := fromJSONB[string](c.Dimensions)
	if err != nil {
		return nil, errs.E(op, fmt.Errorf("decoding dimensions of cube %s: %w", c.ID, err))
	}

	measures, err := fromJSONB[string](c.Measures)
	if err != nil {
		return nil, errs.E(op, fmt.Errorf("decoding measures of cube %s: %w", c.ID, err))
	}

	metadata := map[string]any{}

	if c.Metadata.Valid && len(c.Metadata.RawMessage) > 0 && string(c.Metadata.RawMessage) != "null" {
		err = json.Unmarshal(c.Metadata.RawMessage, &metadata)
		if err != nil {
			return nil, errs.E(op, fmt.Errorf("decoding metadata of cube %s: %w", c.ID, err))
		}
	}

	return &service.DataCube{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		Query:        c.Query,
		DataSourceID: c.DataSourceID,
		Dimensions:   dimensions,
		Measures:     measures,
		Metadata:     metadata,
		CreatedAt:    c.CreatedAt,
	}, nil
}

type DataCubes []gensql.DataCube

func (c DataCubes) To() ([]*service.DataCube, error) {
	const op errs.Op = "DataCubes.To"

	cubes := make([]*service.DataCube, len(c))

	for i, raw := range c {
		cube, err := From(DataCube(raw))
		if err != nil {
			return nil, errs.E(op, err)
		}

		cubes[i] = cube
	}

	return cubes, nil
}

func NewDataCubeStorage(queries DataCubeQueries) *dataCubeStorage {
	return &dataCubeStorage{
		queries: queries,
	}
}
