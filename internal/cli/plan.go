package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewPlanCmd создаёт команду разового прохода планирования.
func NewPlanCmd(optsFn func() Options, outputFn func() *Output) *cobra.Command {
	var ordersPath string
	var at string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Выполнить проход планирования по файлу заказов",
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

			headers := []string{"ORDER", "OPERATION", "MACHINE", "START", "END", "MINUTES", "STATUS"}
			rows := make([][]string, len(results))
			for i, r := range results {
				rows[i] = []string{
					r.OrderID,
					r.OperationID,
					r.Machine,
					formatInstant(r.PlannedStartDate),
					formatInstant(r.PlannedEndDate),
					formatMinutes(r.TotalMinutes()),
					string(r.Status),
				}
			}

			out.Print(headers, rows, results)
			out.Success(fmt.Sprintf("Запланировано операций: %d", len(results)))
			return nil
		},
	}

	cmd.Flags().StringVar(&ordersPath, "orders", "", "Путь к YAML-файлу заказов (обязателен)")
	cmd.Flags().StringVar(&at, "at", "", "Момент начала планирования в RFC3339 (по умолчанию — сейчас)")
	cmd.MarkFlagRequired("orders")

	return cmd
}
