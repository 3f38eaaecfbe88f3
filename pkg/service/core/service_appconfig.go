package core

import (
	"context"

	"github.com/securebi/securebi-backend/pkg/errs"
	"github.com/securebi/securebi-backend/pkg/service"
)

var _ service.AppConfigService = &appConfigService{}

type appConfigService struct {
	appConfigStorage service.AppConfigStorage
}

func (s *appConfigService) GetAppConfigs(ctx context.Context) ([]*service.AppConfig, error) {
	const op errs.Op = "appConfigService.GetAppConfigs"

	configs, err := s.appConfigStorage.GetAppConfigs(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return configs, nil
}

func (s *appConfigService) GetAppConfig(ctx context.Context, key string) (*service.AppConfig, error) {
	const op errs.Op = "appConfigService.GetAppConfig"

	config, err := s.appConfigStorage.GetAppConfig(ctx, key)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return config, nil
}

func (s *appConfigService) CreateAppConfig(ctx context.Context, input *service.NewAppConfig) (*service.AppConfig, error) {
	const op errs.Op = "appConfigService.CreateAppConfig"

	config, err := s.appConfigStorage.CreateAppConfig(ctx, newID(appConfigIDPrefix), input)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return config, nil
}

func (s *appConfigService) UpdateAppConfig(ctx context.Context, key string, input *service.AppConfigUpdate) (*service.AppConfig, error) {
	const op errs.Op = "appConfigService.UpdateAppConfig"

	config, err := s.appConfigStorage.UpdateAppConfig(ctx, key, input)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return config, nil
}

func (s *appConfigService) DeleteAppConfig(ctx context.Context, key string) error {
	const op errs.Op = "appConfigService.DeleteAppConfig"

	err := s.appConfigStorage.DeleteAppConfig(ctx, key)
	if err != nil {
		return errs.E(op, err)
	}

	return nil
}

func NewAppConfigService(storage service.AppConfigStorage) *appConfigService {
	return &appConfigService{appConfigStorage: storage}
}
