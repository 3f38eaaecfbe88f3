package service

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type AppConfigStorage interface {
	GetAppConfigs(ctx context.Context) ([]*AppConfig, error)
	GetAppConfig(ctx context.Context, key string) (*AppConfig, error)
	CreateAppConfig(ctx context.Context, id string, input *NewAppConfig) (*AppConfig, error)
	UpdateAppConfig(ctx context.Context, key string, input *AppConfigUpdate) (*AppConfig, error)
	DeleteAppConfig(ctx context.Context, key string) error
}

type AppConfigService interface {
	GetAppConfigs(ctx context.Context) ([]*AppConfig, error)
	GetAppConfig(ctx context.Context, key string) (*AppConfig, error)
	CreateAppConfig(ctx context.Context, input *NewAppConfig) (*AppConfig, error)
	UpdateAppConfig(ctx context.Context, key string, input *AppConfigUpdate) (*AppConfig, error)
	DeleteAppConfig(ctx context.Context, key string) error
}

// AppConfig is a runtime setting of the frontend, stored by key.
type AppConfig struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Value       *string   `json:"value"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type NewAppConfig struct {
	Key         string  `json:"key"`
	Value       *string `json:"value"`
	Description *string `json:"description"`
}

func (c NewAppConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Key, validation.Required),
	)
}

type AppConfigUpdate struct {
	Value       *string `json:"value"`
	Description *string `json:"description"`
}
