package cli

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kasuf/thewho-planner/internal/calendar"
	"github.com/kasuf/thewho-planner/internal/catalog"
	"github.com/kasuf/thewho-planner/internal/config"
	"github.com/kasuf/thewho-planner/internal/domain"
	"github.com/kasuf/thewho-planner/internal/planner"
)

// Options — общие флаги всех команд.
type Options struct {
	// ConfigPath — путь к YAML-конфигурации. Пустой — умолчания.
	ConfigPath string

	// Offline — не ходить в API праздников, использовать встроенный
	// календарь.
	Offline bool
}

// buildCalendar собирает рабочий календарь по конфигурации.
// В офлайн-режиме источником праздников служит встроенный список.
func buildCalendar(cfg config.Config, offline bool) *calendar.Calendar {
	var feed calendar.HolidayFeed
	if offline {
		feed = calendar.OfflineFeed()
	} else {
		var feedOpts []calendar.HebcalOption
		if cfg.Calendar.FeedURL != "" {
			feedOpts = append(feedOpts, calendar.WithBaseURL(cfg.Calendar.FeedURL))
		}
		feed = calendar.NewHebcalFeed(feedOpts...)
	}
	return calendar.New(feed,
		calendar.WithCacheTTL(cfg.Calendar.CacheTTL()),
		calendar.WithFetchTimeout(cfg.Calendar.FetchTimeout()),
	)
}

// buildCatalog загружает каталог станков: из файла конфигурации или
// встроенный.
func buildCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(cfg.CatalogPath)
}

// plannerEnv — собранное окружение команды: планировщик и всё,
// из чего он построен.
type plannerEnv struct {
	Planner  *planner.Planner
	Catalog  *catalog.Catalog
	Calendar *calendar.Calendar
	Config   config.Config
}

// buildPlanner собирает планировщик из конфигурации.
// clock == nil означает реальные часы.
func buildPlanner(opts Options, clock calendar.Clock) (plannerEnv, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return plannerEnv{}, err
	}
	cat, err := buildCatalog(cfg)
	if err != nil {
		return plannerEnv{}, err
	}
	cal := buildCalendar(cfg, opts.Offline)

	var popts []planner.Option
	if clock != nil {
		popts = append(popts, planner.WithClock(clock))
	}
	return plannerEnv{
		Planner:  planner.New(cat, cal, popts...),
		Catalog:  cat,
		Calendar: cal,
		Config:   cfg,
	}, nil
}

// parseClock превращает значение флага --at в источник времени.
// Пустая строка означает реальные часы.
func parseClock(at string) (calendar.Clock, error) {
	if at == "" {
		return nil, nil
	}
	moment, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return nil, fmt.Errorf("разбор --at: %w", err)
	}
	return func() time.Time { return moment }, nil
}

// loadOrders читает заказы из YAML-файла.
func loadOrders(path string) ([]domain.Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение файла заказов %s: %w", path, err)
	}

	var file struct {
		Orders []domain.Order `yaml:"orders"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("разбор файла заказов %s: %w", path, err)
	}
	if len(file.Orders) == 0 {
		return nil, fmt.Errorf("файл заказов %s пуст", path)
	}
	return file.Orders, nil
}
