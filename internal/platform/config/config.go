package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	SourceLunarGo  = "lunargo"
	SourcePostgres = "postgres"
	SourceRemote   = "remote"

	EnvPrefix = "BAZI"
)

type HTTPConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	DevMode bool   `mapstructure:"dev_mode"`
}

// CalendarConfig elige la fuente del calendario y cómo se llama.
type CalendarConfig struct {
	Source       string        `mapstructure:"source"`
	Timeout      time.Duration `mapstructure:"timeout"`
	Cache        bool          `mapstructure:"cache"`
	CacheSize    int           `mapstructure:"cache_size"`
	DSN          string        `mapstructure:"dsn"`
	RemoteURL    string        `mapstructure:"remote_url"`
	RemoteAPIKey string        `mapstructure:"remote_api_key"`
}

// Config se carga una vez al arrancar: defaults, bazi.yaml (opcional), BAZI_* env y flags.
type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	Log      LogConfig      `mapstructure:"log"`
	App      AppConfig      `mapstructure:"app"`
	Calendar CalendarConfig `mapstructure:"calendar"`
}

// Init configura viper: archivo explícito o bazi.yaml en el cwd, más variables BAZI_*.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bazi")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// PORT a secas se respeta por compatibilidad con los despliegues existentes.
	_ = viper.BindEnv("http.port", EnvPrefix+"_HTTP_PORT", "PORT")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("http.port", 5001)
	viper.SetDefault("http.read_timeout", "5s")
	viper.SetDefault("http.write_timeout", "10s")
	viper.SetDefault("http.shutdown_timeout", "10s")
	viper.SetDefault("http.allowed_origins", []string{"*"})

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")

	viper.SetDefault("app.name", "bazi-chart")
	viper.SetDefault("app.dev_mode", false)

	viper.SetDefault("calendar.source", SourceLunarGo)
	viper.SetDefault("calendar.timeout", "2s")
	viper.SetDefault("calendar.cache", true)
	viper.SetDefault("calendar.cache_size", 4096)
	viper.SetDefault("calendar.dsn", "")
	viper.SetDefault("calendar.remote_url", "")
	viper.SetDefault("calendar.remote_api_key", "")
}

// Load aplica defaults, decodifica y valida.
func Load() (Config, error) {
	setDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Calendar.Source = strings.ToLower(strings.TrimSpace(cfg.Calendar.Source))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port %d is out of range", c.HTTP.Port)
	}
	if c.Calendar.Timeout <= 0 {
		return errors.New("calendar.timeout must be positive")
	}
	if c.Calendar.Cache && c.Calendar.CacheSize <= 0 {
		return fmt.Errorf("calendar.cache_size %d must be positive", c.Calendar.CacheSize)
	}

	switch c.Calendar.Source {
	case SourceLunarGo:
	case SourcePostgres:
		if strings.TrimSpace(c.Calendar.DSN) == "" {
			return errors.New("calendar.dsn is required for the postgres source")
		}
	case SourceRemote:
		if strings.TrimSpace(c.Calendar.RemoteURL) == "" {
			return errors.New("calendar.remote_url is required for the remote source")
		}
	default:
		return fmt.Errorf("unknown calendar.source %q", c.Calendar.Source)
	}
	return nil
}

// Addr devuelve ":port" para http.Server.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
