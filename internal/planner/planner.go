package planner

import (
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kasuf/thewho-planner/internal/calendar"
	"github.com/kasuf/thewho-planner/internal/catalog"
	"github.com/kasuf/thewho-planner/internal/domain"
	"github.com/kasuf/thewho-planner/internal/engine"
	"github.com/kasuf/thewho-planner/internal/telemetry"
)

// Planner выполняет проходы планирования по каталогу станков
// и рабочему календарю.
type Planner struct {
	catalog *catalog.Catalog
	cal     *calendar.Calendar
	clock   calendar.Clock
	logger  *slog.Logger
}

// Option настраивает планировщик.
type Option func(*Planner)

// WithClock подменяет источник текущего времени. Используется в тестах.
func WithClock(clock calendar.Clock) Option {
	return func(p *Planner) { p.clock = clock }
}

// WithLogger задаёт логгер планировщика.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner) { p.logger = logger }
}

// New создаёт планировщик.
func New(cat *catalog.Catalog, cal *calendar.Calendar, opts ...Option) *Planner {
	p := &Planner{
		catalog: cat,
		cal:     cal,
		clock:   time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// schedulingContext — переходящее состояние одного прохода.
//
// lastSetup хранит тип наладки, оставшийся на станке после последней
// назначенной на него операции. Состояние живёт ровно один проход:
// профили станков в каталоге не изменяются.
type schedulingContext struct {
	lastSetup map[string]string
}

// finished отображает операции на момент их готовности: завершённые
// операции готовы сразу, запланированные — к плановому окончанию.
// Зависимые от операции, отсутствующей в карте, планируются от
// последнего доступного момента готовности внутри заказа.
type finished map[string]time.Time

// PlanOrders выполняет проход планирования по списку заказов.
//
// Заказы обрабатываются в порядке убывания приоритета, при равном
// приоритете — по возрастанию дедлайна. Внутри заказа операции идут
// в порядке выполнения (engine.ExecutionOrder). Заказ с ошибкой графа
// и операция без совместимого станка пропускаются с записью в лог;
// остаток заказа после пропущенной операции планируется дальше от
// последнего доступного момента готовности.
//
// При фиксированных входе и часах результат детерминирован с точностью
// до генерируемых идентификаторов.
func (p *Planner) PlanOrders(orders []domain.Order) []domain.PlanningResult {
	started := time.Now()
	defer func() {
		telemetry.PlanningDuration.Observe(time.Since(started).Seconds())
	}()
	telemetry.PlanningPassesTotal.Inc()

	now := p.clock()
	machines := p.catalog.Active()

	sorted := make([]domain.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority > sorted[j].Priority
		}
		return sorted[i].Deadline.Before(sorted[j].Deadline)
	})

	sc := schedulingContext{lastSetup: make(map[string]string)}
	done := make(finished)
	results := make([]domain.PlanningResult, 0, len(orders))

	for i := range sorted {
		order := &sorted[i]
		logger := telemetry.WithOrderID(p.logger, order.ID)

		ordered, graph, err := engine.ExecutionOrder(order.ID, order.Operations)
		if err != nil {
			logger.Warn("заказ пропущен: некорректный граф операций", "error", err)
			telemetry.OperationsSkippedTotal.WithLabelValues("bad_graph").Inc()
			continue
		}

		// Последний доступный момент готовности внутри заказа:
		// страховка на случай пропущенного предшественника.
		var lastEnd time.Time

		for _, op := range ordered {
			opLogger := telemetry.WithOperationID(logger, op.ID)

			if op.IsCompleted(order.Quantity) {
				done[op.ID] = now
				continue
			}

			earliest := now
			if pred := graph.Predecessor(op.ID); pred != nil {
				predEnd, ok := done[pred.ID]
				if !ok {
					// Предшественник пропущен: остаток заказа всё равно
					// планируется, старт от последнего доступного момента.
					opLogger.Warn("предшественник не запланирован, старт от последнего доступного момента",
						"predecessor_id", pred.ID)
					predEnd = lastEnd
				}
				if predEnd.After(earliest) {
					earliest = predEnd
				}
			}

			machine, err := engine.SelectMachine(op, machines)
			if err != nil {
				opLogger.Warn("операция пропущена: нет совместимого станка",
					"operation_type", op.Type, "error", err)
				telemetry.OperationsSkippedTotal.WithLabelValues("no_machine").Inc()
				continue
			}

			est := engine.EstimateDuration(op, order, machine, sc.lastSetup[machine.Name])
			start := p.cal.AdjustToWorkingTime(earliest)
			end := p.cal.AdvanceByWorkingMinutes(start, est.Total())

			remaining := order.Quantity - op.CompletedUnits
			if remaining < 0 {
				remaining = 0
			}

			results = append(results, domain.PlanningResult{
				ID:                  uuid.New(),
				OrderID:             order.ID,
				OperationID:         op.ID,
				Machine:             machine.Name,
				PlannedStartDate:    start,
				PlannedEndDate:      end,
				QuantityAssigned:    order.Quantity,
				RemainingQuantity:   remaining,
				ExpectedTimeMinutes: math.Round(est.ExpectedMinutes),
				SetupTimeMinutes:    math.Round(est.SetupMinutes),
				BufferTimeMinutes:   math.Round(est.BufferMinutes),
				Status:              domain.PlanningStatusPlanned,
			})
			telemetry.OperationsPlannedTotal.Inc()

			done[op.ID] = end
			if end.After(lastEnd) {
				lastEnd = end
			}
			sc.lastSetup[machine.Name] = op.Type.SetupType()

			telemetry.WithMachine(opLogger, machine.Name).Debug("операция запланирована",
				"start", start,
				"end", end,
				"total_minutes", est.Total())
		}
	}

	p.logger.Info("проход планирования завершён",
		"orders", len(orders),
		"results", len(results))
	return results
}
