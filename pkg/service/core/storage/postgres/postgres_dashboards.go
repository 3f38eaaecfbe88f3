package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/securebi/securebi-backend/pkg/database/gensql"
	"github.com/securebi/securebi-backend/pkg/errs"
	"github.com/securebi/securebi-backend/pkg/service"
)

const dashboardNotFound = "Dashboard not found"

type DashboardQueries interface {
	GetDashboards(ctx context.Context) ([]gensql.Dashboard, error)
	GetDashboard(ctx context.Context, id string) (gensql.Dashboard, error)
	CreateDashboard(ctx context.Context, arg gensql.CreateDashboardParams) (gensql.Dashboard, error)
	UpdateDashboard(ctx context.Context, arg gensql.UpdateDashboardParams) (gensql.Dashboard, error)
	DeleteDashboard(ctx context.Context, id string) (int64, error)
}

var _ service.DashboardStorage = &dashboardStorage{}

type dashboardStorage struct {
	queries DashboardQueries
}

func (s *dashboardStorage) GetDashboards(ctx context.Context) ([]*service.Dashboard, error) {
	const op errs.Op = "dashboardStorage.GetDashboards"

	raw, err := s.queries.GetDashboards(ctx)
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	dashboards, err := From(Dashboards(raw))
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	return dashboards, nil
}

func (s *dashboardStorage) GetDashboard(ctx context.Context, id string) (*service.Dashboard, error) {
	const op errs.Op = "dashboardStorage.GetDashboard"

	raw, err := s.queries.GetDashboard(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.E(errs.NotExist, op, errs.Parameter("id"), dashboardNotFound)
		}

		return nil, errs.E(errs.Database, op, err, errs.Parameter("id"))
	}

	dashboard, err := From(Dashboard(raw))
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	return dashboard, nil
}

func (s *dashboardStorage) CreateDashboard(ctx context.Context, id string, dashboard *service.NewDashboard) (*service.Dashboard, error) {
	const op errs.Op = "dashboardStorage.CreateDashboard"

	widgets, err := toJSONB(dashboard.Widgets)
	if err != nil {
		return nil, errs.E(errs.Internal, op, err, errs.Parameter("widgets"))
	}

	raw, err := s.queries.CreateDashboard(ctx, gensql.CreateDashboardParams{
		ID:          id,
		Name:        dashboard.Name,
		Description: dashboard.Description,
		DataCubeID:  dashboard.DataCubeID,
		Widgets:     widgets,
	})
	if err != nil {
		if isPQError(err, pqForeignKeyViolation) {
			return nil, errs.E(errs.NotExist, op, errs.Parameter("dataCubeId"), dataCubeNotFound)
		}

		return nil, errs.E(errs.Database, op, err)
	}

	out, err := From(Dashboard(raw))
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	return out, nil
}

func (s *dashboardStorage) UpdateDashboard(ctx context.Context, id string, dashboard *service.NewDashboard) (*service.Dashboard, error) {
	const op errs.Op = "dashboardStorage.UpdateDashboard"

	widgets, err := toJSONB(dashboard.Widgets)
	if err != nil {
		return nil, errs.E(errs.Internal, op, err, errs.Parameter("widgets"))
	}

	raw, err := s.queries.UpdateDashboard(ctx, gensql.UpdateDashboardParams{
		ID:          id,
		Name:        dashboard.Name,
		Description: dashboard.Description,
		DataCubeID:  dashboard.DataCubeID,
		Widgets:     widgets,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.E(errs.NotExist, op, errs.Parameter("id"), dashboardNotFound)
		}

		if isPQError(err, pqForeignKeyViolation) {
			return nil, errs.E(errs.NotExist, op, errs.Parameter("dataCubeId"), dataCubeNotFound)
		}

		return nil, errs.E(errs.Database, op, err, errs.Parameter("id"))
	}

	out, err := From(Dashboard(raw))
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	return out, nil
}

func (s *dashboardStorage) DeleteDashboard(ctx context.Context, id string) error {
	const op errs.Op = "dashboardStorage.DeleteDashboard"

	n, err := s.queries.DeleteDashboard(ctx, id)
	if err != nil {
		return errs.E(errs.Database, op, err, errs.Parameter("id"))
	}

	if n == 0 {
		return errs.E(errs.NotExist, op, errs.Parameter("id"), dashboardNotFound)
	}

	return nil
}

type Dashboard gensql.Dashboard

func (d Dashboard) To() (*service.Dashboard, error) {
	const op errs.Op = "Dashboard.To"

	widgets, err := fromJSONB[*service.Widget](d.Widgets)
	if err != nil {
		return nil, errs.E(op, fmt.Errorf("decoding widgets of dashboard %s: %w", d.ID, err))
	}

	return &service.Dashboard{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		DataCubeID:  d.DataCubeID,
		Widgets:     widgets,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

type Dashboards []gensql.Dashboard

func (d Dashboards) To() ([]*service.Dashboard, error) {
	const op errs.Op = "Dashboards.To"

	dashboards := make([]*service.Dashboard, len(d))

	for i, raw := range d {
		dashboard, err := From(Dashboard(raw))
		if err != nil {
			return nil, errs.E(op, err)
		}

		dashboards[i] = dashboard
	}

	return dashboards, nil
}

func NewDashboardStorage(queries DashboardQueries) *dashboardStorage {
	return &dashboardStorage{
		queries: queries,
	}
}
