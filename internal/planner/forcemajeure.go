package planner

import (
	"fmt"

	"github.com/kasuf/thewho-planner/internal/domain"
	"github.com/kasuf/thewho-planner/internal/engine"
	"github.com/kasuf/thewho-planner/internal/telemetry"
)

// HandleForceMajeure перепланирует затронутые заказы после форс-мажора
// и формирует алерт о событии.
//
// Поломка станка исключает его из каталога на время перепланирования;
// операции, предпочитавшие сломанный станок, получают альтернативу
// по максимальной производительности. Остальные типы событий станочный
// парк не меняют: затронутые заказы просто перепланируются заново.
//
// Заказы, не затронутые событием, в перепланирование не попадают и
// возвращаются без результатов: их действующий план остаётся в силе.
func (p *Planner) HandleForceMajeure(event domain.ForceMajeure, orders []domain.Order) ([]domain.PlanningResult, domain.Alert, error) {
	affected := orders
	if len(event.AffectedOrders) > 0 {
		affected = make([]domain.Order, 0, len(event.AffectedOrders))
		for _, o := range orders {
			if event.AffectsOrder(o.ID) {
				affected = append(affected, o)
			}
		}
	}

	replanner := p
	severity := domain.SeverityMedium

	if event.EntityType == domain.EntityMachine && event.Type == domain.ForceMajeureMachineBreakdown {
		severity = domain.SeverityHigh

		reduced, err := p.catalog.Without(event.EntityID)
		if err != nil {
			return nil, domain.Alert{}, fmt.Errorf("исключение станка %q: %w", event.EntityID, err)
		}
		replanner = New(reduced, p.cal, WithClock(p.clock), WithLogger(p.logger))

		affected = p.reassignPreferred(affected, event.EntityID)
	}

	results := replanner.PlanOrders(affected)

	alert := domain.NewAlert(
		domain.AlertForceMajeure,
		severity,
		fmt.Sprintf("Форс-мажор: %s", event.Type),
		fmt.Sprintf("%s; перепланировано заказов: %d", event.Description, len(affected)),
		event.EntityType,
		event.EntityID,
		p.clock(),
	)
	telemetry.AlertsRaisedTotal.WithLabelValues(string(alert.Severity)).Inc()

	p.logger.Warn("форс-мажор обработан",
		"type", event.Type,
		"entity", event.EntityID,
		"affected_orders", len(affected),
		"results", len(results))

	return results, alert, nil
}

// reassignPreferred заменяет предпочтение сломанного станка на лучшую
// альтернативу из оставшихся. Заказы копируются, исходные не меняются.
func (p *Planner) reassignPreferred(orders []domain.Order, broken string) []domain.Order {
	machines := p.catalog.Active()

	out := make([]domain.Order, len(orders))
	copy(out, orders)
	for i := range out {
		ops := make([]domain.Operation, len(out[i].Operations))
		copy(ops, out[i].Operations)
		for j := range ops {
			if ops[j].PreferredMachine != broken {
				continue
			}
			alt, err := engine.SelectAlternativeMachine(&ops[j], machines, broken)
			if err != nil {
				ops[j].PreferredMachine = ""
				continue
			}
			ops[j].PreferredMachine = alt.Name
		}
		out[i].Operations = ops
	}
	return out
}
