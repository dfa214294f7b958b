package planner

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/kasuf/thewho-planner/internal/catalog"
	"github.com/kasuf/thewho-planner/internal/domain"
	"github.com/kasuf/thewho-planner/internal/telemetry"
)

// AlertEvaluator оценивает риски по действующему плану: срывы
// дедлайнов, просроченные заказы, перегрузку станков.
type AlertEvaluator struct {
	catalog *catalog.Catalog
	clock   func() time.Time
	logger  *slog.Logger
}

// EvaluatorOption настраивает оценщик алертов.
type EvaluatorOption func(*AlertEvaluator)

// WithEvaluatorClock подменяет источник текущего времени.
func WithEvaluatorClock(clock func() time.Time) EvaluatorOption {
	return func(e *AlertEvaluator) { e.clock = clock }
}

// WithEvaluatorLogger задаёт логгер оценщика.
func WithEvaluatorLogger(logger *slog.Logger) EvaluatorOption {
	return func(e *AlertEvaluator) { e.logger = logger }
}

// NewAlertEvaluator создаёт оценщик алертов.
func NewAlertEvaluator(cat *catalog.Catalog, opts ...EvaluatorOption) *AlertEvaluator {
	e := &AlertEvaluator{
		catalog: cat,
		clock:   time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CheckOverdueOrders находит заказы, чей дедлайн уже в прошлом.
// Просроченный заказ — critical независимо от состояния плана:
// дедлайн не переписывается, решение остаётся за человеком.
func (e *AlertEvaluator) CheckOverdueOrders(orders []domain.Order) []domain.Alert {
	now := e.clock()

	var alerts []domain.Alert
	for i := range orders {
		o := &orders[i]
		if !o.IsOverdue(now) {
			continue
		}
		alert := domain.NewAlert(
			domain.AlertDeadlineRisk,
			domain.SeverityCritical,
			fmt.Sprintf("Заказ %s просрочен", o.DrawingNumber),
			fmt.Sprintf("дедлайн %s уже прошёл", o.Deadline.Format(time.RFC3339)),
			domain.EntityOrder,
			o.ID,
			now,
		)
		alerts = append(alerts, alert)
		telemetry.AlertsRaisedTotal.WithLabelValues(string(alert.Severity)).Inc()
	}
	return alerts
}

// CheckDeadlineCompliance сверяет план с дедлайнами заказов.
//
// Узкое место заказа — самое позднее плановое окончание среди его
// результатов. Алерт deadline_risk формируется тогда и только тогда,
// когда узкое место строго позже дедлайна. Уже просроченные заказы
// пропускаются: по ним CheckOverdueOrders даёт critical.
func (e *AlertEvaluator) CheckDeadlineCompliance(orders []domain.Order, results []domain.PlanningResult) []domain.Alert {
	now := e.clock()

	bottleneck := make(map[string]time.Time, len(orders))
	for i := range results {
		r := &results[i]
		if r.PlannedEndDate.After(bottleneck[r.OrderID]) {
			bottleneck[r.OrderID] = r.PlannedEndDate
		}
	}

	var alerts []domain.Alert
	for i := range orders {
		o := &orders[i]
		if o.IsOverdue(now) {
			continue
		}
		end, ok := bottleneck[o.ID]
		if !ok {
			continue
		}
		if !end.After(o.Deadline) {
			continue
		}

		behind := end.Sub(o.Deadline)
		alert := domain.NewAlert(
			domain.AlertDeadlineRisk,
			domain.SeverityHigh,
			fmt.Sprintf("Срыв дедлайна заказа %s", o.DrawingNumber),
			fmt.Sprintf("план завершается %s, дедлайн %s, отставание %s",
				end.Format(time.RFC3339), o.Deadline.Format(time.RFC3339), behind),
			domain.EntityOrder,
			o.ID,
			now,
		)
		alerts = append(alerts, alert)
		telemetry.AlertsRaisedTotal.WithLabelValues(string(alert.Severity)).Inc()
	}
	return alerts
}

// MachineLoad возвращает суммарную плановую нагрузку по станкам, минуты.
func (e *AlertEvaluator) MachineLoad(results []domain.PlanningResult) map[string]float64 {
	load := make(map[string]float64)
	for i := range results {
		r := &results[i]
		load[r.Machine] += r.TotalMinutes()
	}
	return load
}

// DayLoad — плановая нагрузка станка за календарный день.
type DayLoad struct {
	Machine string

	// Day — начало дня (UTC-полночь).
	Day time.Time

	// Operations — количество операций, начинающихся в этот день.
	Operations int

	// Minutes — суммарное рабочее окно этих операций.
	Minutes float64

	// LimitMinutes — суточный лимит станка из каталога.
	LimitMinutes int
}

// MachineLoadStatistics раскладывает плановую нагрузку по станкам и
// дням. Нагрузка результата относится ко дню планового начала.
// Список отсортирован по станку, затем по дню.
func (e *AlertEvaluator) MachineLoadStatistics(results []domain.PlanningResult) []DayLoad {
	type key struct {
		machine string
		day     time.Time
	}
	perDay := make(map[key]*DayLoad)
	for i := range results {
		r := &results[i]
		day := r.PlannedStartDate.Truncate(24 * time.Hour)
		k := key{machine: r.Machine, day: day}
		dl, ok := perDay[k]
		if !ok {
			limit := 0
			if profile, err := e.catalog.Get(r.Machine); err == nil {
				limit = profile.WorkingMinutesPerDay
			}
			dl = &DayLoad{Machine: r.Machine, Day: day, LimitMinutes: limit}
			perDay[k] = dl
		}
		dl.Operations++
		dl.Minutes += r.TotalMinutes()
	}

	out := make([]DayLoad, 0, len(perDay))
	for _, dl := range perDay {
		out = append(out, *dl)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Machine != out[j].Machine {
			return out[i].Machine < out[j].Machine
		}
		return out[i].Day.Before(out[j].Day)
	})
	return out
}

// CheckMachineOverload ищет дни, когда плановая нагрузка станка
// превышает его суточный лимит. Перегруженный день даёт алерт
// queue_overload.
func (e *AlertEvaluator) CheckMachineOverload(results []domain.PlanningResult) []domain.Alert {
	now := e.clock()

	var alerts []domain.Alert
	for _, dl := range e.MachineLoadStatistics(results) {
		if dl.LimitMinutes <= 0 || dl.Minutes <= float64(dl.LimitMinutes) {
			continue
		}
		alert := domain.NewAlert(
			domain.AlertQueueOverload,
			domain.SeverityMedium,
			fmt.Sprintf("Перегрузка станка %s", dl.Machine),
			fmt.Sprintf("на %s запланировано %.0f минут при лимите %d",
				dl.Day.Format("2006-01-02"), dl.Minutes, dl.LimitMinutes),
			domain.EntityMachine,
			dl.Machine,
			now,
		)
		alerts = append(alerts, alert)
		telemetry.AlertsRaisedTotal.WithLabelValues(string(alert.Severity)).Inc()
	}

	if len(alerts) > 0 {
		e.logger.Warn("обнаружена перегрузка станков", "alerts", len(alerts))
	}
	return alerts
}

// Evaluate выполняет все проверки над планом и возвращает общий список
// алертов.
func (e *AlertEvaluator) Evaluate(orders []domain.Order, results []domain.PlanningResult) []domain.Alert {
	alerts := e.CheckOverdueOrders(orders)
	alerts = append(alerts, e.CheckDeadlineCompliance(orders, results)...)
	alerts = append(alerts, e.CheckMachineOverload(results)...)
	return alerts
}
