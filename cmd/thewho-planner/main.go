// thewho-planner — инструмент планирования производства.
//
// Использование:
//
//	thewho-planner [--config PATH] [--json] [--offline] <command> [flags]
//
// Команды:
//
//	plan      Разовый проход планирования по файлу заказов
//	check     Оценка рисков по дедлайнам и загрузке станков
//	holidays  Праздники рабочего календаря за год
//	serve     Демон регулярного перепланирования с метриками
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kasuf/thewho-planner/internal/cli"
	"github.com/kasuf/thewho-planner/internal/telemetry"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	logger := telemetry.SetupLogger()

	var configPath string
	var jsonOutput bool
	var offline bool

	rootCmd := &cobra.Command{
		Use:           "thewho-planner",
		Short:         "thewho-planner — планировщик производства",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Путь к YAML-конфигурации")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Вывод в формате JSON")
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "Не обращаться к API праздников, встроенный календарь")

	optsFn := func() cli.Options {
		return cli.Options{ConfigPath: configPath, Offline: offline}
	}
	outputFn := func() *cli.Output { return cli.NewOutput(jsonOutput) }

	rootCmd.AddCommand(
		cli.NewPlanCmd(optsFn, outputFn),
		cli.NewCheckCmd(optsFn, outputFn),
		cli.NewHolidaysCmd(optsFn, outputFn),
		cli.NewServeCmd(optsFn, logger),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
