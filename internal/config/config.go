// Пакет config — конфигурация демона планирования.
//
// Конфигурация читается из YAML-файла; отсутствующие поля получают
// значения по умолчанию. Пустой путь означает конфигурацию целиком
// по умолчанию.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Значения по умолчанию.
const (
	DefaultListenAddr      = ":9090"
	DefaultReplanCron      = "0 6 * * *"
	DefaultCacheTTLHours   = 24
	DefaultFetchTimeoutSec = 10
)

var ErrInvalidConfig = errors.New("некорректная конфигурация")

// Config — конфигурация демона thewho-planner.
type Config struct {
	// Server — HTTP-сервер метрик и здоровья.
	Server ServerConfig `yaml:"server"`

	// Replan — расписание регулярного перепланирования.
	Replan ReplanConfig `yaml:"replan"`

	// Calendar — параметры рабочего календаря.
	Calendar CalendarConfig `yaml:"calendar"`

	// CatalogPath — путь к YAML-каталогу станков.
	// Пустой путь — встроенный каталог.
	CatalogPath string `yaml:"catalog_path"`

	// OrdersPath — путь к YAML-файлу заказов для регулярного прохода.
	OrdersPath string `yaml:"orders_path"`
}

type ServerConfig struct {
	// ListenAddr — адрес HTTP-сервера (/metrics, /healthz).
	ListenAddr string `yaml:"listen_addr"`
}

type ReplanConfig struct {
	// Cron — расписание перепланирования в формате cron.
	Cron string `yaml:"cron"`
}

type CalendarConfig struct {
	// FeedURL — адрес API праздников. Пустой — адрес по умолчанию.
	FeedURL string `yaml:"feed_url"`

	// CacheTTLHours — время жизни кэша праздников, часы.
	CacheTTLHours int `yaml:"cache_ttl_hours"`

	// FetchTimeoutSec — таймаут запроса к API праздников, секунды.
	FetchTimeoutSec int `yaml:"fetch_timeout_sec"`
}

// CacheTTL возвращает время жизни кэша праздников.
func (c CalendarConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLHours) * time.Hour
}

// FetchTimeout возвращает таймаут запроса к API праздников.
func (c CalendarConfig) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSec) * time.Second
}

// Default возвращает конфигурацию по умолчанию.
func Default() Config {
	return Config{
		Server: ServerConfig{ListenAddr: DefaultListenAddr},
		Replan: ReplanConfig{Cron: DefaultReplanCron},
		Calendar: CalendarConfig{
			CacheTTLHours:   DefaultCacheTTLHours,
			FetchTimeoutSec: DefaultFetchTimeoutSec,
		},
	}
}

// Load читает конфигурацию из файла и дополняет её значениями
// по умолчанию. Пустой путь возвращает Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("чтение конфигурации %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("разбор конфигурации %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = DefaultListenAddr
	}
	if c.Replan.Cron == "" {
		c.Replan.Cron = DefaultReplanCron
	}
	if c.Calendar.CacheTTLHours == 0 {
		c.Calendar.CacheTTLHours = DefaultCacheTTLHours
	}
	if c.Calendar.FetchTimeoutSec == 0 {
		c.Calendar.FetchTimeoutSec = DefaultFetchTimeoutSec
	}
}

// Validate проверяет согласованность конфигурации.
func (c *Config) Validate() error {
	if c.Calendar.CacheTTLHours < 1 {
		return fmt.Errorf("%w: calendar.cache_ttl_hours %d меньше 1", ErrInvalidConfig, c.Calendar.CacheTTLHours)
	}
	if c.Calendar.FetchTimeoutSec < 1 {
		return fmt.Errorf("%w: calendar.fetch_timeout_sec %d меньше 1", ErrInvalidConfig, c.Calendar.FetchTimeoutSec)
	}
	return nil
}
