package ai

import (
	"context"
	"errors"

	"github.com/securebi/securebi-backend/pkg/cubegen"
	"github.com/securebi/securebi-backend/pkg/errs"
	"github.com/securebi/securebi-backend/pkg/service"
)

// CubeGenerator is satisfied by *cubegen.Generator.
type CubeGenerator interface {
	Generate(ctx context.Context, req cubegen.Request) (*cubegen.CubeStructure, error)
}

var _ service.CubeGenerationAPI = &cubeGenerationAPI{}

type cubeGenerationAPI struct {
	generator CubeGenerator
}

func (a *cubeGenerationAPI) GenerateCube(ctx context.Context, req cubegen.Request) (*cubegen.CubeStructure, error) {
	const op errs.Op = "cubeGenerationAPI.GenerateCube"

	cube, err := a.generator.Generate(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, cubegen.ErrMissingInput):
			return nil, errs.E(errs.InvalidRequest, op, err)
		case cubegen.KindOf(err) == cubegen.TransportFailure:
			return nil, errs.E(errs.IO, op, err)
		case cubegen.KindOf(err) == cubegen.ValidationFailure:
			var genErr *cubegen.Error
			if errors.As(err, &genErr) {
				return nil, errs.E(errs.InvalidRequest, op, errs.Parameter(genErr.Field), err)
			}

			return nil, errs.E(errs.InvalidRequest, op, err)
		default:
			return nil, errs.E(errs.InvalidRequest, op, err)
		}
	}

	return cube, nil
}

var _ service.ChatAPI = &chatAPI{}

type chatAPI struct {
	model cubegen.Model
}

func (a *chatAPI) Chat(ctx context.Context, prompt string) (string, error) {
	const op errs.Op = "chatAPI.Chat"

	answer, err := a.model.Generate(ctx, prompt)
	if err != nil {
		return "", errs.E(errs.IO, op, err)
	}

	return answer, nil
}

func NewCubeGenerationAPI(generator CubeGenerator) *cubeGenerationAPI {
	return &cubeGenerationAPI{
		generator: generator,
	}
}

func NewChatAPI(model cubegen.Model) *chatAPI {
	return &chatAPI{
		model: model,
	}
}
