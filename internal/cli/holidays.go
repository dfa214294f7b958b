package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kasuf/thewho-planner/internal/config"
)

// NewHolidaysCmd создаёт команду просмотра праздников календаря.
func NewHolidaysCmd(optsFn func() Options, outputFn func() *Output) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "Показать праздники рабочего календаря за год",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := optsFn()
			out := outputFn()

			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			cal := buildCalendar(cfg, opts.Offline)

			if year == 0 {
				year = time.Now().Year()
			}
			holidays := cal.HolidaysForYear(year)

			headers := []string{"DATE", "WEEKDAY"}
			rows := make([][]string, len(holidays))
			for i, h := range holidays {
				rows[i] = []string{
					h.Format("2006-01-02"),
					h.Weekday().String(),
				}
			}

			out.Print(headers, rows, holidays)
			out.Success(fmt.Sprintf("Праздников за %d год: %d", year, len(holidays)))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Год (по умолчанию — текущий)")

	return cmd
}
