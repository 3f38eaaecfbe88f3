package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/securebi/securebi-backend/pkg/database/gensql"
	"github.com/securebi/securebi-backend/pkg/errs"
	"github.com/securebi/securebi-backend/pkg/service"
)

const appConfigNotFound = "Config not found"

type AppConfigQueries interface {
	GetAppConfigs(ctx context.Context) ([]gensql.AppConfig, error)
	GetAppConfig(ctx context.Context, key string) (gensql.AppConfig, error)
	CreateAppConfig(ctx context.Context, arg gensql.CreateAppConfigParams) (gensql.AppConfig, error)
	UpdateAppConfig(ctx context.Context, arg gensql.UpdateAppConfigParams) (gensql.AppConfig, error)
	DeleteAppConfig(ctx context.Context, key string) (int64, error)
}

var _ service.AppConfigStorage = &appConfigStorage{}

type appConfigStorage struct {
	queries AppConfigQueries
}

func (s *appConfigStorage) GetAppConfigs(ctx context.Context) ([]*service.AppConfig, error) {
	const op errs.Op = "appConfigStorage.GetAppConfigs"

	raw, err := s.queries.GetAppConfigs(ctx)
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	configs := make([]*service.AppConfig, len(raw))
	for i, c := range raw {
		configs[i], err = From(AppConfig(c))
		if err != nil {
			return nil, errs.E(errs.Internal, op, err)
		}
	}

	return configs, nil
}

func (s *appConfigStorage) GetAppConfig(ctx context.Context, key string) (*service.AppConfig, error) {
	const op errs.Op = "appConfigStorage.GetAppConfig"

	raw, err := s.queries.GetAppConfig(ctx, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.E(errs.NotExist, op, errs.Parameter("key"), appConfigNotFound)
		}

		return nil, errs.E(errs.Database, op, err, errs.Parameter("key"))
	}

	out, err := From(AppConfig(raw))
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	return out, nil
}

func (s *appConfigStorage) CreateAppConfig(ctx context.Context, id string, input *service.NewAppConfig) (*service.AppConfig, error) {
	const op errs.Op = "appConfigStorage.CreateAppConfig"

	raw, err := s.queries.CreateAppConfig(ctx, gensql.CreateAppConfigParams{
		ID:          id,
		Key:         input.Key,
		Value:       ptrToNullString(input.Value),
		Description: ptrToNullString(input.Description),
	})
	if err != nil {
		if isPQError(err, pqUniqueViolation) {
			return nil, errs.E(errs.InvalidRequest, op, errs.Parameter("key"), "Config key already exists")
		}

		return nil, errs.E(errs.Database, op, err, errs.Parameter("key"))
	}

	out, err := From(AppConfig(raw))
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	return out, nil
}

func (s *appConfigStorage) UpdateAppConfig(ctx context.Context, key string, input *service.AppConfigUpdate) (*service.AppConfig, error) {
	const op errs.Op = "appConfigStorage.UpdateAppConfig"

	raw, err := s.queries.UpdateAppConfig(ctx, gensql.UpdateAppConfigParams{
		Key:         key,
		Value:       ptrToNullString(input.Value),
		Description: ptrToNullString(input.Description),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.E(errs.NotExist, op, errs.Parameter("key"), appConfigNotFound)
		}

		return nil, errs.E(errs.Database, op, err, errs.Parameter("key"))
	}

	out, err := From(AppConfig(raw))
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	return out, nil
}

func (s *appConfigStorage) DeleteAppConfig(ctx context.Context, key string) error {
	const op errs.Op = "appConfigStorage.DeleteAppConfig"

	n, err := s.queries.DeleteAppConfig(ctx, key)
	if err != nil {
		return errs.E(errs.Database, op, err, errs.Parameter("key"))
	}

	if n == 0 {
		return errs.E(errs.NotExist, op, errs.Parameter("key"), appConfigNotFound)
	}

	return nil
}

type AppConfig gensql.AppConfig

func (c AppConfig) To() (*service.AppConfig, error) {
	return &service.AppConfig{
		ID:          c.ID,
		Key:         c.Key,
		Value:       nullStringToPtr(c.Value),
		Description: nullStringToPtr(c.Description),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}, nil
}

func NewAppConfigStorage(queries AppConfigQueries) *appConfigStorage {
	return &appConfigStorage{
		queries: queries,
	}
}
