package planner

import (
	"testing"

	"github.com/kasuf/thewho-planner/internal/domain"
)

func TestApplyShiftData(t *testing.T) {
	orders := []domain.Order{
		simpleOrder("o1", 1, monday.AddDate(0, 0, 30),
			domain.Operation{ID: "op1", Type: domain.OperationMilling, EstimatedTimePerUnit: 6},
		),
	}

	// Две смены по одной операции: 4 детали за 32 минуты и 2 за 16,
	// фактическое время на деталь — 8 минут
	records := []ShiftRecord{
		{OperationID: "op1", UnitsProduced: 4, TimeSpentMinutes: 32},
		{OperationID: "op1", UnitsProduced: 2, TimeSpentMinutes: 16},
	}

	updated := ApplyShiftData(orders, records)

	op := updated[0].Operations[0]
	if op.ActualTimePerUnit != 8 {
		t.Errorf("expected actual time 8, got %v", op.ActualTimePerUnit)
	}
	if op.CompletedUnits != 6 {
		t.Errorf("expected 6 completed units, got %d", op.CompletedUnits)
	}
	if op.Status != domain.OperationStatusInProgress {
		t.Errorf("expected in-progress, got %s", op.Status)
	}

	// Исходный заказ не изменился
	if orders[0].Operations[0].CompletedUnits != 0 {
		t.Error("original orders must stay untouched")
	}
}

func TestApplyShiftData_CompletesOperation(t *testing.T) {
	orders := []domain.Order{
		simpleOrder("o1", 1, monday.AddDate(0, 0, 30),
			domain.Operation{ID: "op1", Type: domain.OperationMilling, EstimatedTimePerUnit: 6},
		),
	}

	records := []ShiftRecord{
		{OperationID: "op1", UnitsProduced: 10, TimeSpentMinutes: 70},
	}

	updated := ApplyShiftData(orders, records)
	if updated[0].Operations[0].Status != domain.OperationStatusCompleted {
		t.Errorf("expected completed, got %s", updated[0].Operations[0].Status)
	}
}

func TestApplyShiftData_IgnoresInvalidRecords(t *testing.T) {
	orders := []domain.Order{
		simpleOrder("o1", 1, monday.AddDate(0, 0, 30),
			domain.Operation{ID: "op1", Type: domain.OperationMilling, EstimatedTimePerUnit: 6},
		),
	}

	records := []ShiftRecord{
		{OperationID: "op1", UnitsProduced: 0, TimeSpentMinutes: 30},
		{OperationID: "op1", UnitsProduced: 3, TimeSpentMinutes: 0},
	}

	updated := ApplyShiftData(orders, records)
	if updated[0].Operations[0].ActualTimePerUnit != 0 {
		t.Error("invalid records should not set actual time")
	}
}

func TestReplanWithActuals(t *testing.T) {
	p := newTestPlanner(t)

	orders := []domain.Order{
		simpleOrder("o1", 1, monday.AddDate(0, 0, 30),
			domain.Operation{ID: "op1", Type: domain.OperationMilling, EstimatedTimePerUnit: 6},
		),
	}

	// Фактическое время вдвое больше оценки
	records := []ShiftRecord{
		{OperationID: "op1", UnitsProduced: 2, TimeSpentMinutes: 24},
	}

	baseline := p.PlanOrders(orders)
	replanned := p.ReplanWithActuals(orders, records)

	if len(replanned) != 1 {
		t.Fatalf("expected 1 result, got %d", len(replanned))
	}
	// 12 минут на деталь × 10 деталей вместо 60 по оценке
	if replanned[0].ExpectedTimeMinutes != 120 {
		t.Errorf("expected 120 minutes, got %v", replanned[0].ExpectedTimeMinutes)
	}
	if !replanned[0].PlannedEndDate.After(baseline[0].PlannedEndDate) {
		t.Error("slower actual pace should push the end date back")
	}
}

func TestReplanWithActuals_CompletedDropsOut(t *testing.T) {
	p := newTestPlanner(t)

	orders := []domain.Order{
		simpleOrder("o1", 1, monday.AddDate(0, 0, 30),
			domain.Operation{ID: "op1", Type: domain.OperationMilling, EstimatedTimePerUnit: 6},
			domain.Operation{ID: "op2", Type: domain.OperationTurning, EstimatedTimePerUnit: 4},
		),
	}

	records := []ShiftRecord{
		{OperationID: "op1", UnitsProduced: 10, TimeSpentMinutes: 65},
	}

	replanned := p.ReplanWithActuals(orders, records)
	if len(replanned) != 1 {
		t.Fatalf("expected 1 result, got %d", len(replanned))
	}
	if replanned[0].OperationID != "op2" {
		t.Errorf("expected op2, got %s", replanned[0].OperationID)
	}
}
