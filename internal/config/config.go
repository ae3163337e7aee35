package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/davecgh/go-spew/spew"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment override, e.g. TE_SERVER_ADDRESS.
const EnvPrefix = "TE_"

// Config is the glue for all configuration sections
type Config struct {
	Server    Server    `toml:"server" envPrefix:"SERVER_"`
	Log       Log       `toml:"log" envPrefix:"LOG_"`
	Signup    Signup    `toml:"signup" envPrefix:"SIGNUP_"`
	Metrics   Metrics   `toml:"metrics" envPrefix:"METRICS_"`
	Telemetry Telemetry `toml:"telemetry" envPrefix:"TELEMETRY_"`

	// Translations optionally points to a translations TOML file that
	// replaces the embedded copy.
	Translations string `toml:"translations" env:"TRANSLATIONS"`
}

// Server is the data required for the HTTP listener
type Server struct {
	Address         string        `toml:"address" env:"ADDRESS"`
	RequestTimeout  time.Duration `toml:"request_timeout" env:"REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
	// CacheSize bounds the number of rendered pages kept in memory.
	CacheSize int64 `toml:"cache_size" env:"CACHE_SIZE"`
}

type Log struct {
	Debug bool `toml:"debug" env:"DEBUG"`
	// Dir enables a rotating JSON log file next to console output.
	Dir string `toml:"dir" env:"DIR"`
}

// Signup describes where the signup form posts to. Submissions are handled
// by the static host's form processor, not by this server.
type Signup struct {
	FormName   string `toml:"form_name" env:"FORM_NAME"`
	FormAction string `toml:"form_action" env:"FORM_ACTION"`
	FormMethod string `toml:"form_method" env:"FORM_METHOD"`
}

type Metrics struct {
	Enabled bool `toml:"enabled" env:"ENABLED"`
	Port    int  `toml:"port" env:"PORT"`
}

// Telemetry enables OTLP trace export when Endpoint is set.
type Telemetry struct {
	Endpoint string `toml:"endpoint" env:"ENDPOINT"`
}

// Default returns the configuration used when nothing else is specified.
func Default() Config {
	return Config{
		Server: Server{
			Address:         "localhost:8080",
			RequestTimeout:  20 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CacheSize:       16,
		},
		Signup: Signup{
			FormName:   "signup",
			FormAction: "/",
			FormMethod: "POST",
		},
		Metrics: Metrics{
			Port: 9091,
		},
	}
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Server),
		validation.Field(&c.Signup),
		validation.Field(&c.Metrics),
	)
}

func (s Server) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Address, validation.Required, validation.By(hostPort)),
		validation.Field(&s.RequestTimeout, validation.Required, validation.Min(time.Second)),
		validation.Field(&s.ShutdownTimeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&s.CacheSize, validation.Required, validation.Min(int64(1))),
	)
}

func (s Signup) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.FormName, validation.Required),
		validation.Field(&s.FormAction, validation.Required),
		validation.Field(&s.FormMethod, validation.Required, validation.In("GET", "POST")),
	)
}

func (m Metrics) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Port, validation.When(m.Enabled, validation.Required, validation.Min(1), validation.Max(65535))),
	)
}

func hostPort(value any) error {
	addr, _ := value.(string)
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return errors.New("must be a host:port pair")
	}
	return nil
}

// Load builds the configuration from defaults, the TOML file at path, an
// optional .env file and finally TE_* environment variables, in that order.
// A missing config file is not an error.
func Load(ctx context.Context, path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			slog.WarnContext(ctx, "Config file not found, using defaults", slog.String("path", path))
		case err != nil:
			return cfg, fmt.Errorf("could not decode config: %w", err)
		default:
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				slog.WarnContext(ctx, "There were a few undecoded keys", slog.String("keys", spew.Sdump(undecoded)))
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("could not load .env: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// MetricsAddress is the listen address of the metrics endpoint.
func (c Config) MetricsAddress() string {
	host, _, err := net.SplitHostPort(c.Server.Address)
	if err != nil {
		host = ""
	}
	return net.JoinHostPort(host, strconv.Itoa(c.Metrics.Port))
}
