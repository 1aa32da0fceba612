package config

import (
	"strings"
	"time"

	"asistencia_dashboard_backend/internal/util"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Moodle    MoodleConfig    `mapstructure:"moodle"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

// MoodleConfig describe la conexión de sólo lectura a la base del LMS.
// El esquema lo administra Moodle; este servicio nunca escribe en él.
type MoodleConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`

	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_minutes"`
	QueryTimeout    time.Duration `mapstructure:"query_timeout_seconds"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("ASISTENCIA")
	viper.AutomaticEnv()

	// Base de datos Moodle
	viper.BindEnv("moodle.host", "MOODLE_DB_HOST")
	viper.BindEnv("moodle.port", "MOODLE_DB_PORT")
	viper.BindEnv("moodle.user", "MOODLE_DB_USER")
	viper.BindEnv("moodle.password", "MOODLE_DB_PASSWORD")
	viper.BindEnv("moodle.dbname", "MOODLE_DB_NAME")

	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Moodle.ConnMaxIdleTime = cfg.Moodle.ConnMaxIdleTime * time.Minute
	cfg.Moodle.QueryTimeout = cfg.Moodle.QueryTimeout * time.Second

	if cfg.Moodle.MaxOpenConns <= 0 {
		cfg.Moodle.MaxOpenConns = 10
	}

	if err := cfg.Moodle.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate falla de inmediato cuando faltan parámetros de conexión, nombrando
// todas las variables ausentes para corregir el despliegue en una sola pasada.
func (c *MoodleConfig) Validate() error {
	var missing []string
	if c.Host == "" {
		missing = append(missing, "MOODLE_DB_HOST")
	}
	if c.User == "" {
		missing = append(missing, "MOODLE_DB_USER")
	}
	if c.Password == "" {
		missing = append(missing, "MOODLE_DB_PASSWORD")
	}
	if c.DBName == "" {
		missing = append(missing, "MOODLE_DB_NAME")
	}
	if len(missing) > 0 {
		return util.NewConfigurationError("faltan variables de entorno de la base de datos Moodle: %s", strings.Join(missing, ", "))
	}
	if c.Port == 0 {
		c.Port = 3306
	}
	return nil
}
