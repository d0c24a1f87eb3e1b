package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "EXAMGEN"

type Config struct {
	Env        string           `mapstructure:"env"`
	Server     ServerConfig     `mapstructure:"server"`
	DB         DBConfig         `mapstructure:"db"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Logger     LoggerConfig     `mapstructure:"logger"`
	LLM        LLMConfig        `mapstructure:"llm"`
	Generation GenerationConfig `mapstructure:"generation"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Batch      BatchConfig      `mapstructure:"batch"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	BodyLimit    int           `mapstructure:"body_limit"`
	AllowOrigins string        `mapstructure:"allow_origins"`
}

// DBConfig selects one of the supported drivers: sqlite, postgres or oracle.
type DBConfig struct {
	Driver       string `mapstructure:"driver"`
	DSN          string `mapstructure:"dsn"`
	AutoMigrate  bool   `mapstructure:"auto_migrate"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type LoggerConfig struct {
	Level string `mapstructure:"level"`
	Env   string `mapstructure:"env"`
}

// LLMConfig describes the model gateway. Credential is never logged.
type LLMConfig struct {
	Provider    string  `mapstructure:"provider"`
	Endpoint    string  `mapstructure:"endpoint"`
	Credential  string  `mapstructure:"credential"`
	ModelName   string  `mapstructure:"model_name"`
	TimeoutMs   int     `mapstructure:"timeout_ms"`
	Temperature float64 `mapstructure:"temperature"`
	Referer     string  `mapstructure:"referer"`
	Title       string  `mapstructure:"title"`
}

func (c LLMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

type GenerationConfig struct {
	DefaultAmount int           `mapstructure:"default_amount"`
	MaxAmount     int           `mapstructure:"max_amount"`
	Extraction    string        `mapstructure:"extraction"`
	DraftTTL      time.Duration `mapstructure:"draft_ttl"`
}

type JWTConfig struct {
	SecretKey       string        `mapstructure:"secret_key"`
	AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL time.Duration `mapstructure:"refresh_token_ttl"`
}

type BatchConfig struct {
	QuestionsPerSubject int `mapstructure:"questions_per_subject"`
	Concurrency         int `mapstructure:"concurrency"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")

	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", 20*time.Second)
	// generation can take up to the model timeout
	v.SetDefault("server.write_timeout", 90*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.body_limit", 10*1024*1024)
	v.SetDefault("server.allow_origins", "*")

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "file:examgen.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	v.SetDefault("db.auto_migrate", true)
	v.SetDefault("db.max_open_conns", 10)

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	v.SetDefault("llm.provider", "openrouter")
	// empty endpoint means the provider default, see gateway.FromConfig
	v.SetDefault("llm.endpoint", "")
	v.SetDefault("llm.model_name", "meta-llama/llama-3.1-8b-instruct")
	v.SetDefault("llm.timeout_ms", 60000)
	v.SetDefault("llm.temperature", 0.5)
	v.SetDefault("llm.referer", "http://localhost:3000")
	v.SetDefault("llm.title", "ExamGen")

	v.SetDefault("generation.default_amount", 10)
	v.SetDefault("generation.max_amount", 50)
	v.SetDefault("generation.extraction", "brace_span")
	v.SetDefault("generation.draft_ttl", time.Hour)

	v.SetDefault("jwt.secret_key", "")
	v.SetDefault("jwt.access_token_ttl", 15*time.Minute)
	v.SetDefault("jwt.refresh_token_ttl", 7*24*time.Hour)

	v.SetDefault("batch.questions_per_subject", 5)
	v.SetDefault("batch.concurrency", 2)
}

// LoadConfig reads config.yaml from the given search paths (or . and ./config),
// applies defaults and EXAMGEN_* environment overrides. A missing file is fine.
func LoadConfig(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The frontend deployment exports the provider key under this name.
	if err := v.BindEnv("llm.credential", EnvPrefix+"_LLM_CREDENTIAL", "OPENROUTER_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind llm credential env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if f := v.ConfigFileUsed(); f != "" {
		absPath, _ := filepath.Abs(f)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail late at request time.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case "sqlite", "postgres", "oracle":
	default:
		return fmt.Errorf("unsupported db.driver %q", c.DB.Driver)
	}
	switch c.LLM.Provider {
	case "openrouter", "openai", "ollama":
	default:
		return fmt.Errorf("unsupported llm.provider %q", c.LLM.Provider)
	}
	switch c.Generation.Extraction {
	case "brace_span", "balanced":
	default:
		return fmt.Errorf("unsupported generation.extraction %q", c.Generation.Extraction)
	}
	if c.Generation.DefaultAmount < 1 || c.Generation.DefaultAmount > c.Generation.MaxAmount {
		return fmt.Errorf("generation.default_amount must be between 1 and %d", c.Generation.MaxAmount)
	}
	if c.LLM.TimeoutMs <= 0 {
		return errors.New("llm.timeout_ms must be positive")
	}
	return nil
}
