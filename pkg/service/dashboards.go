package service

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type DashboardStorage interface {
	GetDashboards(ctx context.Context) ([]*Dashboard, error)
	GetDashboard(ctx context.Context, id string) (*Dashboard, error)
	CreateDashboard(ctx context.Context, id string, dashboard *NewDashboard) (*Dashboard, error)
	UpdateDashboard(ctx context.Context, id string, dashboard *NewDashboard) (*Dashboard, error)
	DeleteDashboard(ctx context.Context, id string) error
}

// ChatAPI answers free text questions with the configured language model.
type ChatAPI interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

type DashboardService interface {
	GetDashboards(ctx context.Context) ([]*Dashboard, error)
	GetDashboard(ctx context.Context, id string) (*Dashboard, error)
	CreateDashboard(ctx context.Context, input *NewDashboard) (*Dashboard, error)
	UpdateDashboard(ctx context.Context, id string, input *NewDashboard) (*Dashboard, error)
	DeleteDashboard(ctx context.Context, id string) error
	Chat(ctx context.Context, id string, input *ChatMessage) (*ChatResponse, error)
}

type Dashboard struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DataCubeID  string    `json:"dataCubeId"`
	Widgets     []*Widget `json:"widgets"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Widget is a single visualisation on a dashboard, placed on a grid.
type Widget struct {
	ID     string         `json:"id"`
	Type   string         `json:"type"`
	Title  string         `json:"title"`
	Config map[string]any `json:"config"`
	X      int            `json:"x"`
	Y      int            `json:"y"`
	Width  int            `json:"width"`
	Height int            `json:"height"`
}

func (w Widget) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.ID, validation.Required),
		validation.Field(&w.Type, validation.Required),
		validation.Field(&w.X, validation.Min(0)),
		validation.Field(&w.Y, validation.Min(0)),
		validation.Field(&w.Width, validation.Min(0)),
		validation.Field(&w.Height, validation.Min(0)),
	)
}

type NewDashboard struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DataCubeID  string    `json:"dataCubeId"`
	Widgets     []*Widget `json:"widgets"`
}

func (d NewDashboard) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required),
		validation.Field(&d.DataCubeID, validation.Required),
		validation.Field(&d.Widgets),
	)
}

type ChatMessage struct {
	Message string `json:"message"`
}

func (m ChatMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Message, validation.Required),
	)
}

type ChatResponse struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
