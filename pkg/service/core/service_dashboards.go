package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/securebi/securebi-backend/pkg/errs"
	"github.com/securebi/securebi-backend/pkg/service"
)

var _ service.DashboardService = &dashboardService{}

type dashboardService struct {
	dashboardStorage service.DashboardStorage
	dataCubeStorage  service.DataCubeStorage
	chatAPI          service.ChatAPI
}

func (s *dashboardService) GetDashboards(ctx context.Context) ([]*service.Dashboard, error) {
	const op errs.Op = "dashboardService.GetDashboards"

	dashboards, err := s.dashboardStorage.GetDashboards(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return dashboards, nil
}

func (s *dashboardService) GetDashboard(ctx context.Context, id string) (*service.Dashboard, error) {
	const op errs.Op = "dashboardService.GetDashboard"

	dashboard, err := s.dashboardStorage.GetDashboard(ctx, id)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return dashboard, nil
}

func (s *dashboardService) CreateDashboard(ctx context.Context, input *service.NewDashboard) (*service.Dashboard, error) {
	const op errs.Op = "dashboardService.CreateDashboard"

	_, err := s.dataCubeStorage.GetDataCube(ctx, input.DataCubeID)
	if err != nil {
		return nil, errs.E(op, errs.Parameter("dataCubeId"), err)
	}

	dashboard, err := s.dashboardStorage.CreateDashboard(ctx, newID(dashboardIDPrefix), input)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return dashboard, nil
}

func (s *dashboardService) UpdateDashboard(ctx context.Context, id string, input *service.NewDashboard) (*service.Dashboard, error) {
	const op errs.Op = "dashboardService.UpdateDashboard"

	dashboard, err := s.dashboardStorage.UpdateDashboard(ctx, id, input)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return dashboard, nil
}

func (s *dashboardService) DeleteDashboard(ctx context.Context, id string) error {
	const op errs.Op = "dashboardService.DeleteDashboard"

	err := s.dashboardStorage.DeleteDashboard(ctx, id)
	if err != nil {
		return errs.E(op, err)
	}

	return nil
}

func (s *dashboardService) Chat(ctx context.Context, id string, input *service.ChatMessage) (*service.ChatResponse, error) {
	const op errs.Op = "dashboardService.Chat"

	dashboard, err := s.dashboardStorage.GetDashboard(ctx, id)
	if err != nil {
		return nil, errs.E(op, err)
	}

	cube, err := s.dataCubeStorage.GetDataCube(ctx, dashboard.DataCubeID)
	if err != nil && !errs.KindIs(errs.NotExist, err) {
		return nil, errs.E(op, err)
	}

	answer, err := s.chatAPI.Chat(ctx, chatPrompt(dashboard, cube, input.Message))
	if err != nil {
		return nil, errs.E(op, err)
	}

	return &service.ChatResponse{
		Response:  strings.TrimSpace(answer),
		Timestamp: time.Now(),
	}, nil
}

// chatPrompt describes the dashboard and the cube behind it, followed by the
// question. cube may be nil.
func chatPrompt(dashboard *service.Dashboard, cube *service.DataCube, message string) string {
	b := &strings.Builder{}

	b.WriteString("You are an analytics assistant answering questions about a business intelligence dashboard.\n")
	b.WriteString("Answer briefly, and only from the information below.\n\n")

	fmt.Fprintf(b, "Dashboard: %s\n", dashboard.Name)
	if dashboard.Description != "" {
		fmt.Fprintf(b, "Description: %s\n", dashboard.Description)
	}

	if len(dashboard.Widgets) > 0 {
		b.WriteString("Widgets:\n")
		for _, w := range dashboard.Widgets {
			fmt.Fprintf(b, "- %s (%s)\n", w.Title, w.Type)
		}
	}

	if cube != nil {
		fmt.Fprintf(b, "\nData cube: %s\n", cube.Name)
		if cube.Description != "" {
			fmt.Fprintf(b, "Description: %s\n", cube.Description)
		}
		fmt.Fprintf(b, "Query:\n%s\n", cube.Query)
		fmt.Fprintf(b, "Dimensions: %s\n", strings.Join(cube.Dimensions, ", "))
		fmt.Fprintf(b, "Measures: %s\n", strings.Join(cube.Measures, ", "))
	}

	fmt.Fprintf(b, "\nQuestion: %s\n", message)

	return b.String()
}

func NewDashboardService(
	dashboardStorage service.DashboardStorage,
	dataCubeStorage service.DataCubeStorage,
	chatAPI service.ChatAPI,
) *dashboardService {
	return &dashboardService{
		dashboardStorage: dashboardStorage,
		dataCubeStorage:  dataCubeStorage,
		chatAPI:          chatAPI,
	}
}
