package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/kasuf/thewho-planner/internal/planner"
	"github.com/kasuf/thewho-planner/internal/telemetry"
)

// NewServeCmd создаёт команду демона регулярного перепланирования.
//
// Демон по cron-расписанию читает файл заказов, выполняет проход
// планирования и оценивает риски; результаты и алерты пишутся в лог.
// HTTP-сервер отдаёт /metrics и /healthz.
func NewServeCmd(optsFn func() Options, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить демон регулярного перепланирования",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := optsFn()

			env, err := buildPlanner(opts, nil)
			if err != nil {
				return err
			}
			cfg := env.Config
			if cfg.OrdersPath == "" {
				return errors.New("в конфигурации не задан orders_path")
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			ctx = telemetry.WithLogger(ctx, logger)

			// Праздники текущего и следующего года нужны каждому проходу,
			// греем кэш заранее.
			year := time.Now().Year()
			if err := env.Calendar.Prefetch(ctx, year, year+1); err != nil {
				logger.Warn("прогрев кэша праздников не удался", "error", err)
			}

			evaluator := planner.NewAlertEvaluator(env.Catalog, planner.WithEvaluatorLogger(logger))

			replan := func() {
				orders, err := loadOrders(cfg.OrdersPath)
				if err != nil {
					logger.Error("чтение заказов не удалось", "error", err)
					return
				}
				results := env.Planner.PlanOrders(orders)
				alerts := evaluator.Evaluate(orders, results)
				logger.Info("регулярное перепланирование выполнено",
					"orders", len(orders),
					"results", len(results),
					"alerts", len(alerts))
				for _, a := range alerts {
					logger.Warn("алерт по плану",
						"type", a.Type,
						"severity", a.Severity,
						"entity", a.EntityID,
						"title", a.Title)
				}
			}

			c := cron.New()
			if _, err := c.AddFunc(cfg.Replan.Cron, replan); err != nil {
				return fmt.Errorf("расписание перепланирования %q: %w", cfg.Replan.Cron, err)
			}
			c.Start()
			defer c.Stop()

			// Первый проход сразу при старте, не дожидаясь расписания.
			replan()

			mux := http.NewServeMux()
			mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("ok"))
			})
			mux.Handle("/metrics", promhttp.Handler())

			addr := cfg.Server.ListenAddr
			if v := os.Getenv("PLANNER_PORT"); v != "" {
				addr = ":" + v
			}

			srv := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("демон слушает", "addr", addr, "cron", cfg.Replan.Cron)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("остановка HTTP-сервера: %w", err)
			}
			logger.Info("демон остановлен")
			return nil
		},
	}
}
