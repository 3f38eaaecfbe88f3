package mock

import (
	"context"

	"github.com/securebi/securebi-backend/pkg/database/gensql"
	"github.com/securebi/securebi-backend/pkg/service/core/storage/postgres"
	"github.com/stretchr/testify/mock"
)

var _ postgres.AppConfigQueries = &AppConfigQueriesMock{}

type AppConfigQueriesMock struct {
	mock.Mock
}

func (m *AppConfigQueriesMock) GetAppConfigs(ctx context.Context) ([]gensql.AppConfig, error) {
	args := m.Called(ctx)
	return args.Get(0).([]gensql.AppConfig), args.Error(1)
}

func (m *AppConfigQueriesMock) GetAppConfig(ctx context.Context, key string) (gensql.AppConfig, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(gensql.AppConfig), args.Error(1)
}

func (m *AppConfigQueriesMock) CreateAppConfig(ctx context.Context, arg gensql.CreateAppConfigParams) (gensql.AppConfig, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(gensql.AppConfig), args.Error(1)
}

func (m *AppConfigQueriesMock) UpdateAppConfig(ctx context.Context, arg gensql.UpdateAppConfigParams) (gensql.AppConfig, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(gensql.AppConfig), args.Error(1)
}

func (m *AppConfigQueriesMock) DeleteAppConfig(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}
