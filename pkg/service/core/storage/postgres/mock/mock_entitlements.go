package mock

import (
	"context"

	"github.com/securebi/securebi-backend/pkg/database/gensql"
	"github.com/securebi/securebi-backend/pkg/service/core/storage/postgres"
	"github.com/stretchr/testify/mock"
)

var _ postgres.EntitlementQueries = &EntitlementQueriesMock{}

type EntitlementQueriesMock struct {
	mock.Mock
}

func (m *EntitlementQueriesMock) GetEntitlementsForUser(ctx context.Context, userID string) ([]gensql.DataEntitlement, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]gensql.DataEntitlement), args.Error(1)
}

func (m *EntitlementQueriesMock) CreateEntitlement(ctx context.Context, arg gensql.CreateEntitlementParams) (gensql.DataEntitlement, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(gensql.DataEntitlement), args.Error(1)
}

func (m *EntitlementQueriesMock) DeleteEntitlement(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
