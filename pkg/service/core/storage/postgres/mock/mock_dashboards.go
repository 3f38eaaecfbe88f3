package mock

import (
	"context"

	"github.com/securebi/securebi-backend/pkg/database/gensql"
	"github.com/securebi/securebi-backend/pkg/service/core/storage/postgres"
	"github.com/stretchr/testify/mock"
)

var _ postgres.DashboardQueries = &DashboardQueriesMock{}

type DashboardQueriesMock struct {
	mock.Mock
}

func (m *DashboardQueriesMock) GetDashboards(ctx context.Context) ([]gensql.Dashboard, error) {
	args := m.Called(ctx)
	return args.Get(0).([]gensql.Dashboard), args.Error(1)
}

func (m *DashboardQueriesMock) GetDashboard(ctx context.Context, id string) (gensql.Dashboard, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(gensql.Dashboard), args.Error(1)
}

func (m *DashboardQueriesMock) CreateDashboard(ctx context.Context, arg gensql.CreateDashboardParams) (gensql.Dashboard, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(gensql.Dashboard), args.Error(1)
}

func (m *DashboardQueriesMock) UpdateDashboard(ctx context.Context, arg gensql.UpdateDashboardParams) (gensql.Dashboard, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(gensql.Dashboard), args.Error(1)
}

func (m *DashboardQueriesMock) DeleteDashboard(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
