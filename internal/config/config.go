package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`
	// AllowedOrigins are the browser origins let through by CORS.
	AllowedOrigins []string `toml:"allowed_origins"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	// PostgresMaxConns of 0 keeps the pgxpool default.
	PostgresMaxConns int32 `toml:"postgres_max_conns"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	Insights Insights `toml:"insights"`
}

type Insights struct {
	CaseInsensitiveGrouping bool `toml:"case_insensitive_grouping"`
	// TimeDirections maps a time based movement to "higher" or "lower" (better).
	TimeDirections map[string]string `toml:"time_directions"`
	// MuscleMap extends (or overrides) the built-in movement catalog.
	MuscleMap []MuscleMapping `toml:"muscle_map"`
}

type MuscleMapping struct {
	Name      string   `toml:"name"`
	Primary   []string `toml:"primary"`
	Secondary []string `toml:"secondary"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", path, err)
	}
	return fromToml(&tomlConfig, env)
}

func Parse(env, data string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.Decode(data, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode toml config: %w", err)
	}
	return fromToml(&tomlConfig, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config for env: %s", env)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", env, err)
	}
	return cfg, nil
}

func (c *Config) Validate() (err error) {
	if c.Port <= 0 {
		err = multierr.Append(err, fmt.Errorf("invalid port: %d", c.Port))
	}
	if c.PostgresMaxConns < 0 {
		err = multierr.Append(err, fmt.Errorf("invalid postgres_max_conns: %d", c.PostgresMaxConns))
	}
	for i, m := range c.Insights.MuscleMap {
		if strings.TrimSpace(m.Name) == "" {
			err = multierr.Append(err, fmt.Errorf("muscle_map[%d]: name empty", i))
		}
		if len(m.Primary) == 0 {
			err = multierr.Append(err, fmt.Errorf("muscle_map[%d] %q: no primary muscles", i, m.Name))
		}
	}
	return err
}
