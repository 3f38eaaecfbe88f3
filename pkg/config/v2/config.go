package config

import (
	"fmt"
	"net"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-ozzo/ozzo-validation/v4/is"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/mitchellh/mapstructure"

	"github.com/spf13/viper"
)

const (
	defaultExtension = "yaml"
	defaultTagName   = "yaml"
)

type Binder interface {
	Bind(v *viper.Viper) error
}

type Loader interface {
	Load(name, path, envPrefix string, binder Binder) (Config, error)
}

type Config struct {
	Server   Server   `yaml:"server"`
	Postgres Postgres `yaml:"postgres"`
	BigQuery BigQuery `yaml:"big_query"`
	GenAI    GenAI    `yaml:"gen_ai"`
	CORS     CORS     `yaml:"cors"`

	LogLevel             string `yaml:"log_level"`
	CacheDurationSeconds int    `yaml:"cache_duration_seconds"`
	Debug                bool   `yaml:"debug"`
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Server, validation.Required),
		validation.Field(&c.Postgres, validation.Required),
		validation.Field(&c.BigQuery),
		validation.Field(&c.GenAI, validation.Required),
		validation.Field(&c.CORS),
		validation.Field(&c.LogLevel, validation.Required, validation.In("trace", "debug", "info", "warn", "error")),
		validation.Field(&c.CacheDurationSeconds, validation.Required, validation.Min(1)),
	)
}

func (c Config) CacheDuration() time.Duration {
	return time.Duration(c.CacheDurationSeconds) * time.Second
}

type Postgres struct {
	UserName      string                `yaml:"user_name"`
	Password      string                `yaml:"password"`
	Host          string                `yaml:"host"`
	Port          string                `yaml:"port"`
	DatabaseName  string                `yaml:"database_name"`
	SSLMode       string                `yaml:"ssl_mode"`
	Configuration PostgresConfiguration `yaml:"configuration"`
}

func (p Postgres) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.UserName, validation.Required),
		validation.Field(&p.Password, validation.Required),
		validation.Field(&p.Host, validation.Required, is.Host),
		validation.Field(&p.Port, validation.Required, is.Port),
		validation.Field(&p.DatabaseName, validation.Required),
		validation.Field(&p.SSLMode, validation.Required, validation.In("disable", "allow", "prefer", "require")),
	)
}

func (p Postgres) ConnectionString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s?sslmode=%s",
		p.UserName,
		p.Password,
		net.JoinHostPort(p.Host, p.Port),
		p.DatabaseName,
		p.SSLMode,
	)
}

type PostgresConfiguration struct {
	MaxIdleConnections int `yaml:"max_idle_connections"`
	MaxOpenConnections int `yaml:"max_open_connections"`
}

type Server struct {
	Hostname string `yaml:"hostname"`
	Address  string `yaml:"address"`
	Port     string `yaml:"port"`
}

func (s Server) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Address, validation.Required, is.IP),
		validation.Field(&s.Hostname, validation.Required, is.Host),
		validation.Field(&s.Port, validation.Required, is.Port),
	)
}

type BigQuery struct {
	// Endpoint overrides the BigQuery API endpoint, used with the emulator
	Endpoint   string `yaml:"endpoint"`
	EnableAuth bool   `yaml:"enable_auth"`
	// Location is used for query jobs when the data source does not set one
	Location           string `yaml:"location"`
	SchemaCacheSeconds int    `yaml:"schema_cache_seconds"`
}

func (b BigQuery) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Endpoint, is.URL),
		validation.Field(&b.SchemaCacheSeconds, validation.Min(0)),
	)
}

// GenAI configures the hosted model used for cube generation and dashboard
// chat. When UseVertexAI is set the project and location are used, otherwise
// the API key.
type GenAI struct {
	Model       string `yaml:"model"`
	UseVertexAI bool   `yaml:"use_vertex_ai"`
	Project     string `yaml:"project"`
	Location    string `yaml:"location"`
	APIKey      string `yaml:"api_key"`
	BaseURL     string `yaml:"base_url"`
	// TimeoutSeconds bounds a single model round trip
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

func (g GenAI) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.Model, validation.Required),
		validation.Field(&g.Project, validation.When(g.UseVertexAI, validation.Required)),
		validation.Field(&g.Location, validation.When(g.UseVertexAI, validation.Required)),
		validation.Field(&g.APIKey, validation.When(!g.UseVertexAI, validation.Required)),
		validation.Field(&g.BaseURL, is.URL),
		validation.Field(&g.TimeoutSeconds, validation.Min(0)),
	)
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func (c CORS) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.AllowedOrigins, validation.Each(validation.Required)),
	)
}

type FileParts struct {
	FileName string
	Path     string
}

func ProcessConfigPath(configFile string) (FileParts, error) {
	absolutePath, err := filepath.Abs(configFile)
	if err != nil {
		return FileParts{}, fmt.Errorf("convert to absolute path: %w", err)
	}

	fileName := filepath.Base(absolutePath)
	path := filepath.Dir(absolutePath)
	extension := filepath.Ext(fileName)

	if strings.ReplaceAll(strings.ToLower(extension), ".", "") != defaultExtension {
		return FileParts{}, fmt.Errorf("config file must have extension %s, got: %s", defaultExtension, extension)
	}

	return FileParts{
		FileName: fileName[:len(fileName)-len(extension)],
		Path:     path,
	}, nil
}

func NewFileSystemLoader() *FileSystemLoader {
	return &FileSystemLoader{}
}

type FileSystemLoader struct{}

func (fs *FileSystemLoader) Load(name, path, envPrefix string, b Binder) (Config, error) {
	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName(name)
	v.SetConfigType(defaultExtension)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // So that env vars are translated properly
	v.AutomaticEnv()

	if b != nil {
		err := b.Bind(v)
		if err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix(envPrefix)

	v.SetDefault("gen_ai.model", "gemini-2.5-flash-lite")
	v.SetDefault("gen_ai.location", "us-central1")

	err := v.ReadInConfig()
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var config Config

	err = v.Unmarshal(&config, func(cfg *mapstructure.DecoderConfig) {
		cfg.TagName = defaultTagName // We use yaml tags in the config structs so we can marshal to yaml
	})
	if err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return config, nil
}

type EnvBinder struct {
	binders map[string]string
}

func (e *EnvBinder) Bind(v *viper.Viper) error {
	for envVar, key := range e.binders {
		err := v.BindEnv(key, envVar)
		if err != nil {
			return fmt.Errorf("bind env var %s to key %s: %w", envVar, key, err)
		}
	}

	return nil
}

func NewEnvBinder(binders map[string]string) *EnvBinder {
	return &EnvBinder{
		binders: binders,
	}
}

func NewDefaultEnvBinder() *EnvBinder {
	return NewEnvBinder(map[string]string{
		"GEMINI_MODEL_NAME":     "gen_ai.model",
		"GEMINI_API_KEY":        "gen_ai.api_key",
		"USE_VERTEX_AI":         "gen_ai.use_vertex_ai",
		"GOOGLE_CLOUD_PROJECT":  "gen_ai.project",
		"GOOGLE_CLOUD_LOCATION": "gen_ai.location",
		"DATABASE_PASSWORD":     "postgres.password",
	})
}
