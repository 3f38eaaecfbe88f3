// Package llm wraps the Gemini and Vertex AI model endpoints used for
// cube generation and dashboard chat.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

const defaultTimeout = 60 * time.Second

var (
	ErrEmptyResponse    = errors.New("model returned an empty response")
	ErrPermissionDenied = errors.New("permission denied")
)

type Config struct {
	Model       string
	UseVertexAI bool
	Project     string
	Location    string
	APIKey      string
	// BaseURL overrides the API endpoint, used against test servers.
	BaseURL string
	Timeout time.Duration
}

func (c Config) backend() string {
	if c.UseVertexAI {
		return fmt.Sprintf("Vertex AI (application default credentials, project %s, location %s)", c.Project, c.Location)
	}

	return "Gemini API (api key)"
}

type Client struct {
	client      *genai.Client
	model       string
	backend     string
	temperature float32
	timeout     time.Duration

	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	log      zerolog.Logger
}

// Generate sends one prompt at temperature zero and returns the text of the
// first candidate.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(c.temperature),
	})

	c.latency.WithLabelValues(c.model).Observe(time.Since(start).Seconds())

	if err != nil {
		c.requests.WithLabelValues(c.model, "error").Inc()
		c.log.Error().Err(err).Str("model", c.model).Msg("generating content")

		return "", c.mapError(err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		c.requests.WithLabelValues(c.model, "empty").Inc()

		return "", fmt.Errorf("model %s: %w", c.model, ErrEmptyResponse)
	}

	c.requests.WithLabelValues(c.model, "success").Inc()

	return text, nil
}

func (c *Client) mapError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusForbidden || apiErr.Code == http.StatusUnauthorized {
			return fmt.Errorf("model %s via %s: %w: %s", c.model, c.backend, ErrPermissionDenied, apiErr.Message)
		}

		return fmt.Errorf("model %s via %s: %d %s", c.model, c.backend, apiErr.Code, apiErr.Message)
	}

	return fmt.Errorf("model %s via %s: %w", c.model, c.backend, err)
}

func (c *Client) Backend() string {
	return c.backend
}

func (c *Client) Model() string {
	return c.model
}

// Metrics returns the request counter and latency histogram.
func (c *Client) Metrics() []prometheus.Collector {
	return []prometheus.Collector{c.requests, c.latency}
}

func New(ctx context.Context, cfg Config, log zerolog.Logger) (*Client, error) {
	clientConfig := &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  cfg.APIKey,
	}

	if cfg.UseVertexAI {
		clientConfig = &genai.ClientConfig{
			Backend:  genai.BackendVertexAI,
			Project:  cfg.Project,
			Location: cfg.Location,
		}
	}

	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{
			BaseURL: cfg.BaseURL,
		}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("creating genai client for %s: %w", cfg.backend(), err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		client:      client,
		model:       cfg.Model,
		backend:     cfg.backend(),
		temperature: 0,
		timeout:     timeout,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "securebi",
			Subsystem: "llm",
			Name:      "requests_total",
			Help:      "Number of model requests by outcome.",
		}, []string{"model", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "securebi",
			Subsystem: "llm",
			Name:      "request_duration_seconds",
			Help:      "Latency of model requests.",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 8),
		}, []string{"model"}),
		log: log,
	}, nil
}
