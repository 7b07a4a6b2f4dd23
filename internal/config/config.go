package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/letsssgooo/botapi/internal/tracing"
)

// ErrTokenRequired возвращается Validate, если токен бота не задан.
var ErrTokenRequired = errors.New("BOTAPI_TOKEN is required")

// Config — настройки клиента Bot API.
// Приоритет источников: значения по умолчанию, YAML-файл, .env, переменные окружения.
// Флаги командной строки применяются поверх в cmd.
type Config struct {
	Token    string         `yaml:"token"`
	BaseURL  string         `yaml:"base_url"`
	Timeout  time.Duration  `yaml:"timeout"`
	RPS      float64        `yaml:"rps"`
	Burst    int            `yaml:"burst"`
	Retries  int            `yaml:"retries"`
	LogLevel string         `yaml:"log_level"`
	Tracing  tracing.Config `yaml:"tracing"`
}

// Default возвращает конфигурацию по умолчанию.
func Default() *Config {
	return &Config{
		BaseURL:  "https://api.telegram.org",
		Timeout:  10 * time.Second,
		RPS:      30,
		Burst:    1,
		Retries:  3,
		LogLevel: "info",
		Tracing: tracing.Config{
			ServiceName: "botapi",
			Environment: "dev",
		},
	}
}

// Load собирает конфигурацию. path — необязательный YAML-файл, envFiles — файлы
// в формате .env (по умолчанию ".env"); отсутствующие .env-файлы пропускаются.
// Переменные из .env не перекрывают уже заданные в окружении.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("BOTAPI_TOKEN"); v != "" {
		c.Token = v
	}
	if v := os.Getenv("BOTAPI_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("BOTAPI_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}

	if v := os.Getenv("BOTAPI_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("BOTAPI_TIMEOUT must be a duration: %w", err)
		}
		c.Timeout = timeout
	}
	if v := os.Getenv("BOTAPI_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("BOTAPI_RPS must be a number: %w", err)
		}
		c.RPS = rps
	}
	if v := os.Getenv("BOTAPI_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BOTAPI_BURST must be a number: %w", err)
		}
		c.Burst = burst
	}
	if v := os.Getenv("BOTAPI_RETRIES"); v != "" {
		retries, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BOTAPI_RETRIES must be a number: %w", err)
		}
		c.Retries = retries
	}

	if v := os.Getenv("OTEL_ENABLED"); v != "" {
		c.Tracing.Enabled = isTrue(v)
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		c.Tracing.Endpoint = v
	}
	if v := os.Getenv("OTEL_SERVICE_NAME"); v != "" {
		c.Tracing.ServiceName = v
	}
	if v := os.Getenv("OTEL_ENVIRONMENT"); v != "" {
		c.Tracing.Environment = v
	}
	if v := os.Getenv("OTEL_INSECURE"); v != "" {
		c.Tracing.Insecure = isTrue(v)
	}

	return nil
}

// Validate проверяет настройки, нужные для обращения к API.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return ErrTokenRequired
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if c.Retries < 0 {
		return fmt.Errorf("retries must not be negative, got %d", c.Retries)
	}

	return nil
}

func isTrue(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "1" || v == "true" || v == "yes"
}
