package planner

import (
	"github.com/kasuf/thewho-planner/internal/domain"
)

// ShiftRecord — итог смены по одной операции: сколько деталей сделано
// и сколько рабочего времени на них ушло.
type ShiftRecord struct {
	OperationID      string  `json:"operation_id" yaml:"operation_id"`
	UnitsProduced    int     `json:"units_produced" yaml:"units_produced"`
	TimeSpentMinutes float64 `json:"time_spent_minutes" yaml:"time_spent_minutes"`
}

// ApplyShiftData вносит фактические данные смен в заказы.
//
// По каждой операции агрегируется суммарное время и выпуск; фактическое
// время на деталь записывается в ActualTimePerUnit и с этого момента
// вытесняет оценку в расчётах длительности. Выпуск прибавляется к
// CompletedUnits. Исходные заказы не изменяются.
func ApplyShiftData(orders []domain.Order, records []ShiftRecord) []domain.Order {
	type actual struct {
		units   int
		minutes float64
	}
	byOp := make(map[string]actual, len(records))
	for _, rec := range records {
		if rec.UnitsProduced <= 0 || rec.TimeSpentMinutes <= 0 {
			continue
		}
		a := byOp[rec.OperationID]
		a.units += rec.UnitsProduced
		a.minutes += rec.TimeSpentMinutes
		byOp[rec.OperationID] = a
	}

	out := make([]domain.Order, len(orders))
	copy(out, orders)
	for i := range out {
		ops := make([]domain.Operation, len(out[i].Operations))
		copy(ops, out[i].Operations)
		for j := range ops {
			a, ok := byOp[ops[j].ID]
			if !ok {
				continue
			}
			ops[j].ActualTimePerUnit = a.minutes / float64(a.units)
			ops[j].CompletedUnits += a.units
			if ops[j].CompletedUnits >= out[i].Quantity {
				ops[j].Status = domain.OperationStatusCompleted
			} else if ops[j].Status == domain.OperationStatusPending {
				ops[j].Status = domain.OperationStatusInProgress
			}
		}
		out[i].Operations = ops
	}
	return out
}

// ReplanWithActuals пересчитывает план по фактическим данным смен:
// вносит их в заказы и выполняет новый проход планирования. Операции,
// закрытые сменами полностью, в новый план не попадают.
func (p *Planner) ReplanWithActuals(orders []domain.Order, records []ShiftRecord) []domain.PlanningResult {
	updated := ApplyShiftData(orders, records)
	return p.PlanOrders(updated)
}
