package planner

import (
	"testing"

	"github.com/google/uuid"

	"github.com/kasuf/thewho-planner/internal/catalog"
	"github.com/kasuf/thewho-planner/internal/domain"
)

// twoMillsCatalog — два фрезерных станка, чтобы поломка одного
// оставляла альтернативу.
func twoMillsCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]domain.MachineProfile{
		{Name: "mill-fast", Supports3Axis: true, SupportsMilling: true, EfficiencyFactor: 1.2, WorkingMinutesPerDay: 960, IsActive: true},
		{Name: "mill-slow", Supports3Axis: true, SupportsMilling: true, EfficiencyFactor: 0.8, WorkingMinutesPerDay: 960, IsActive: true},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return c
}

func breakdownEvent(machine string, orders ...string) domain.ForceMajeure {
	return domain.ForceMajeure{
		ID:             uuid.New(),
		Type:           domain.ForceMajeureMachineBreakdown,
		EntityType:     domain.EntityMachine,
		EntityID:       machine,
		StartTime:      monday,
		Status:         domain.ForceMajeureActive,
		AffectedOrders: orders,
		Description:    "сломался шпиндель",
		CreatedAt:      monday,
	}
}

func TestHandleForceMajeure_MachineBreakdown(t *testing.T) {
	p := New(twoMillsCatalog(t), testCalendar(), WithClock(fixedClock(monday)))

	order := simpleOrder("o1", 1, monday.AddDate(0, 0, 30),
		domain.Operation{ID: "op1", Type: domain.OperationMilling, EstimatedTimePerUnit: 6, PreferredMachine: "mill-fast"},
	)

	results, alert, err := p.HandleForceMajeure(breakdownEvent("mill-fast", "o1"), []domain.Order{order})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Сломанный станок не получает ни одной операции
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Machine != "mill-slow" {
		t.Errorf("expected mill-slow, got %s", results[0].Machine)
	}

	if alert.Type != domain.AlertForceMajeure {
		t.Errorf("expected force_majeure alert, got %s", alert.Type)
	}
	if alert.Severity != domain.SeverityHigh {
		t.Errorf("expected high severity, got %s", alert.Severity)
	}
	if alert.EntityID != "mill-fast" {
		t.Errorf("expected entity mill-fast, got %s", alert.EntityID)
	}
}

func TestHandleForceMajeure_OnlyAffectedOrdersReplanned(t *testing.T) {
	p := New(twoMillsCatalog(t), testCalendar(), WithClock(fixedClock(monday)))

	affected := simpleOrder("hit", 1, monday.AddDate(0, 0, 30),
		domain.Operation{ID: "hit-op", Type: domain.OperationMilling, EstimatedTimePerUnit: 6},
	)
	untouched := simpleOrder("spared", 1, monday.AddDate(0, 0, 30),
		domain.Operation{ID: "spared-op", Type: domain.OperationMilling, EstimatedTimePerUnit: 6},
	)

	results, _, err := p.HandleForceMajeure(breakdownEvent("mill-fast", "hit"),
		[]domain.Order{affected, untouched})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].OrderID != "hit" {
		t.Errorf("expected hit order, got %s", results[0].OrderID)
	}
}

func TestHandleForceMajeure_NonMachineEvent(t *testing.T) {
	p := New(twoMillsCatalog(t), testCalendar(), WithClock(fixedClock(monday)))

	order := simpleOrder("o1", 1, monday.AddDate(0, 0, 30),
		domain.Operation{ID: "op1", Type: domain.OperationMilling, EstimatedTimePerUnit: 6},
	)
	event := domain.ForceMajeure{
		ID:             uuid.New(),
		Type:           domain.ForceMajeureMaterialShortage,
		EntityType:     domain.EntityOrder,
		EntityID:       "o1",
		StartTime:      monday,
		Status:         domain.ForceMajeureActive,
		AffectedOrders: []string{"o1"},
		CreatedAt:      monday,
	}

	results, alert, err := p.HandleForceMajeure(event, []domain.Order{order})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Парк не менялся: лучший станок остаётся доступным
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Machine != "mill-fast" {
		t.Errorf("expected mill-fast, got %s", results[0].Machine)
	}
	if alert.Severity != domain.SeverityMedium {
		t.Errorf("expected medium severity, got %s", alert.Severity)
	}
}

func TestHandleForceMajeure_UnknownMachine(t *testing.T) {
	p := New(twoMillsCatalog(t), testCalendar(), WithClock(fixedClock(monday)))

	_, _, err := p.HandleForceMajeure(breakdownEvent("ghost"), nil)
	if err == nil {
		t.Error("expected error for unknown machine")
	}
}

func TestReassignPreferred(t *testing.T) {
	p := New(twoMillsCatalog(t), testCalendar(), WithClock(fixedClock(monday)))

	orders := []domain.Order{
		simpleOrder("o1", 1, monday.AddDate(0, 0, 30),
			domain.Operation{ID: "op1", Type: domain.OperationMilling, EstimatedTimePerUnit: 6, PreferredMachine: "mill-fast"},
		),
	}

	out := p.reassignPreferred(orders, "mill-fast")
	if got := out[0].Operations[0].PreferredMachine; got != "mill-slow" {
		t.Errorf("expected mill-slow, got %s", got)
	}
	// Исходный заказ не изменился
	if orders[0].Operations[0].PreferredMachine != "mill-fast" {
		t.Error("original orders must stay untouched")
	}
}
