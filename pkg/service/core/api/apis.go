package api

import (
	"github.com/securebi/securebi-backend/pkg/bq"
	"github.com/securebi/securebi-backend/pkg/cache"
	"github.com/securebi/securebi-backend/pkg/config/v2"
	"github.com/securebi/securebi-backend/pkg/cubegen"
	"github.com/securebi/securebi-backend/pkg/service"
	"github.com/securebi/securebi-backend/pkg/service/core/api/ai"
	"github.com/securebi/securebi-backend/pkg/service/core/api/gcp"
	"github.com/securebi/securebi-backend/pkg/service/core/cache/postgres"
)

type Clients struct {
	BigQueryAPI       service.BigQueryAPI
	CubeGenerationAPI service.CubeGenerationAPI
	ChatAPI           service.ChatAPI
}

func NewClients(
	schemaCache cache.Cacher,
	bqClient bq.Operations,
	generator *cubegen.Generator,
	model cubegen.Model,
	cfg config.Config,
) *Clients {
	bqAPI := gcp.NewBigQueryAPI(bqClient, cfg.BigQuery.Location)
	bqAPICacher := postgres.NewBigQueryCache(bqAPI, schemaCache)

	return &Clients{
		BigQueryAPI:       bqAPICacher,
		CubeGenerationAPI: ai.NewCubeGenerationAPI(generator),
		ChatAPI:           ai.NewChatAPI(model),
	}
}
