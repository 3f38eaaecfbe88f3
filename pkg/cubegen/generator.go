package cubegen

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Model sends a prompt to a generative model and returns the raw text.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
	// Backend names the endpoint and credential mechanism in use.
	Backend() string
}

type Request struct {
	UserRequest string
	Source      SourceDescriptor
	Tables      []TableDescriptor
}

type Generator struct {
	model       Model
	generations *prometheus.CounterVec
	log         zerolog.Logger
}

// Generate runs one prompt and parse round trip. A failure after the model
// has been called matches ErrGenerationFailed.
func (g *Generator) Generate(ctx context.Context, req Request) (*CubeStructure, error) {
	prompt, err := BuildPrompt(req.UserRequest, req.Source, SerializeTables(req.Tables))
	if err != nil {
		return nil, errors.Wrap(err, "building prompt")
	}

	g.log.Debug().
		Str("data_source", req.Source.Name).
		Int("tables", len(req.Tables)).
		Int("prompt_length", len(prompt)).
		Msg("generating data cube")

	raw, err := g.model.Generate(ctx, prompt)
	if err != nil {
		return nil, g.fail(&Error{
			Kind: TransportFailure,
			Err:  errors.Wrapf(err, "calling model via %s", g.model.Backend()),
		})
	}

	normalized, err := Normalize(raw)
	if err != nil {
		return nil, g.fail(err)
	}

	cube, err := Validate(normalized)
	if err != nil {
		return nil, g.fail(err)
	}

	g.generations.WithLabelValues("success").Inc()

	return cube, nil
}

func (g *Generator) fail(err error) error {
	g.generations.WithLabelValues(KindOf(err).String()).Inc()

	return err
}

// Metrics returns the collector counting generation outcomes.
func (g *Generator) Metrics() prometheus.Collector {
	return g.generations
}

func New(model Model, log zerolog.Logger) *Generator {
	return &Generator{
		model: model,
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "securebi",
			Subsystem: "cubegen",
			Name:      "generations_total",
			Help:      "Number of data cube generations by outcome.",
		}, []string{"outcome"}),
		log: log,
	}
}
