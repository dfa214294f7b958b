package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kasuf/thewho-planner/internal/planner"
)

// NewCheckCmd создаёт команду оценки рисков: планирует заказы и
// проверяет план на срывы дедлайнов и перегрузку станков.
func NewCheckCmd(optsFn func() Options, outputFn func() *Output) *cobra.Command {
	var ordersPath string
	var at string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Проверить план заказов на риски",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			clock, err := parseClock(at)
			if err != nil {
				return err
			}
			env, err := buildPlanner(optsFn(), clock)
			if err != nil {
				return err
			}
			orders, err := loadOrders(ordersPath)
			if err != nil {
				return err
			}

			results := env.Planner.PlanOrders(orders)

			var evalOpts []planner.EvaluatorOption
			if clock != nil {
				evalOpts = append(evalOpts, planner.WithEvaluatorClock(clock))
			}
			evaluator := planner.NewAlertEvaluator(env.Catalog, evalOpts...)
			alerts := evaluator.Evaluate(orders, results)

			if len(alerts) == 0 {
				out.Success("Рисков не обнаружено")
				return nil
			}

			headers := []string{"TYPE", "SEVERITY", "ENTITY", "TITLE"}
			rows := make([][]string, len(alerts))
			for i, a := range alerts {
				rows[i] = []string{
					string(a.Type),
					string(a.Severity),
					a.EntityID,
					a.Title,
				}
			}

			out.Print(headers, rows, alerts)
			out.Success(fmt.Sprintf("Обнаружено рисков: %d", len(alerts)))
			return nil
		},
	}

	cmd.Flags().StringVar(&ordersPath, "orders", "", "Путь к YAML-файлу заказов (обязателен)")
	cmd.Flags().StringVar(&at, "at", "", "Момент оценки в RFC3339 (по умолчанию — сейчас)")
	cmd.MarkFlagRequired("orders")

	return cmd
}
