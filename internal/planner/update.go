package planner

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kasuf/thewho-planner/internal/domain"
)

// Ошибки ручной правки результатов.
var (
	ErrResultNotFound = errors.New("результат планирования не найден")
	ErrInvalidPatch   = errors.New("некорректная правка результата")
)

// Причина каскадного переноса зависимых операций.
const cascadeReason = "зависимая операция перенесена"

// ResultPatch — ручная правка результата планирования.
// Нулевые поля не изменяются.
type ResultPatch struct {
	// PlannedStartDate — новое плановое начало. Начало приводится
	// к рабочему времени, окончание пересчитывается по календарю.
	PlannedStartDate *time.Time

	// Machine — переназначение станка. Станок должен существовать
	// в каталоге.
	Machine *string

	// RemainingQuantity — корректировка остатка, не меньше нуля.
	RemainingQuantity *int

	// ExpectedTimeMinutes — корректировка времени обработки, не
	// меньше нуля. Окончание пересчитывается по календарю.
	ExpectedTimeMinutes *float64

	// SetupTimeMinutes — корректировка времени наладки, не меньше
	// нуля. Окончание пересчитывается по календарю.
	SetupTimeMinutes *float64

	// Reason — причина правки, попадает в RescheduledReason.
	Reason string
}

// SetupCompletion — фактические данные завершённой наладки.
type SetupCompletion struct {
	// ActualSetupMinutes — фактическое время наладки.
	ActualSetupMinutes float64

	// ActualStartTime — фактическое начало обработки.
	ActualStartTime time.Time

	// NewMachine — станок, на котором выполнена наладка, если
	// оператор перенёс операцию. Пустая строка — станок не менялся.
	NewMachine string
}

// UpdatePlanningResult применяет правку к результату и каскадно
// переносит зависимые результаты того же заказа.
//
// Исходный срез не изменяется: возвращается новый срез с обновлёнными
// копиями. Изменённые результаты получают статус rescheduled, отметку
// времени и причину переноса.
func (p *Planner) UpdatePlanningResult(results []domain.PlanningResult, id uuid.UUID, patch ResultPatch) ([]domain.PlanningResult, error) {
	idx := -1
	for i := range results {
		if results[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrResultNotFound, id)
	}

	if patch.RemainingQuantity != nil && *patch.RemainingQuantity < 0 {
		return nil, fmt.Errorf("%w: остаток %d меньше нуля", ErrInvalidPatch, *patch.RemainingQuantity)
	}
	if patch.ExpectedTimeMinutes != nil && *patch.ExpectedTimeMinutes < 0 {
		return nil, fmt.Errorf("%w: время обработки %v меньше нуля", ErrInvalidPatch, *patch.ExpectedTimeMinutes)
	}
	if patch.SetupTimeMinutes != nil && *patch.SetupTimeMinutes < 0 {
		return nil, fmt.Errorf("%w: время наладки %v меньше нуля", ErrInvalidPatch, *patch.SetupTimeMinutes)
	}
	if patch.Machine != nil {
		if _, err := p.catalog.Get(*patch.Machine); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
		}
	}

	out := make([]domain.PlanningResult, len(results))
	copy(out, results)

	now := p.clock()
	target := &out[idx]
	oldStart := target.PlannedStartDate
	moved := false

	if patch.Machine != nil && *patch.Machine != target.Machine {
		target.Machine = *patch.Machine
		moved = true
	}
	if patch.RemainingQuantity != nil {
		target.RemainingQuantity = *patch.RemainingQuantity
	}
	if patch.ExpectedTimeMinutes != nil && *patch.ExpectedTimeMinutes != target.ExpectedTimeMinutes {
		target.ExpectedTimeMinutes = *patch.ExpectedTimeMinutes
		moved = true
	}
	if patch.SetupTimeMinutes != nil && *patch.SetupTimeMinutes != target.SetupTimeMinutes {
		target.SetupTimeMinutes = *patch.SetupTimeMinutes
		moved = true
	}
	if patch.PlannedStartDate != nil {
		target.PlannedStartDate = p.cal.AdjustToWorkingTime(*patch.PlannedStartDate)
		moved = true
	}
	if moved {
		// Изменилось начало или любая временная составляющая —
		// окончание пересчитывается по календарю
		target.PlannedEndDate = p.cal.AdvanceByWorkingMinutes(target.PlannedStartDate, target.TotalMinutes())

		reason := patch.Reason
		if reason == "" {
			reason = "ручная правка результата"
		}
		markRescheduled(target, now, reason)
		p.cascade(out, idx, oldStart, now)
	}

	return out, nil
}

// MarkSetupCompleted фиксирует завершение наладки: подставляет
// фактическое время наладки и начала, пересчитывает окончание и
// каскадно переносит зависимые результаты.
func (p *Planner) MarkSetupCompleted(results []domain.PlanningResult, operationID string, completion SetupCompletion) ([]domain.PlanningResult, error) {
	idx := -1
	for i := range results {
		if results[i].OperationID == operationID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: операция %s", ErrResultNotFound, operationID)
	}
	if completion.ActualSetupMinutes < 0 {
		return nil, fmt.Errorf("%w: время наладки %v меньше нуля", ErrInvalidPatch, completion.ActualSetupMinutes)
	}
	if completion.NewMachine != "" {
		if _, err := p.catalog.Get(completion.NewMachine); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
		}
	}

	out := make([]domain.PlanningResult, len(results))
	copy(out, results)

	now := p.clock()
	target := &out[idx]
	oldStart := target.PlannedStartDate

	target.SetupTimeMinutes = completion.ActualSetupMinutes
	target.PlannedStartDate = p.cal.AdjustToWorkingTime(completion.ActualStartTime)
	target.PlannedEndDate = p.cal.AdvanceByWorkingMinutes(target.PlannedStartDate, target.TotalMinutes())
	if completion.NewMachine != "" {
		target.Machine = completion.NewMachine
	}
	target.Status = domain.PlanningStatusInProgress
	rescheduledAt := now
	target.LastRescheduledAt = &rescheduledAt
	target.RescheduledReason = "наладка завершена, подставлено фактическое время"

	p.cascade(out, idx, oldStart, now)
	return out, nil
}

// cascade переносит результаты того же заказа, запланированные после
// изменённого. oldStart — плановое начало изменённого результата до
// правки: результаты, стоявшие раньше него, не трогаются. Перенос идёт
// в порядке планового начала: окончание каждого результата становится
// нижней границей начала следующего, поэтому сдвиг распространяется
// транзитивно.
func (p *Planner) cascade(results []domain.PlanningResult, changedIdx int, oldStart, now time.Time) {
	changed := &results[changedIdx]

	type entry struct {
		idx   int
		start time.Time
	}
	var chain []entry
	for i := range results {
		if i == changedIdx || results[i].OrderID != changed.OrderID {
			continue
		}
		if results[i].Status.IsTerminal() {
			continue
		}
		if !results[i].PlannedStartDate.Before(oldStart) {
			chain = append(chain, entry{idx: i, start: results[i].PlannedStartDate})
		}
	}
	sort.Slice(chain, func(i, j int) bool {
		return chain[i].start.Before(chain[j].start)
	})

	prevEnd := changed.PlannedEndDate
	for _, e := range chain {
		r := &results[e.idx]
		if !r.PlannedStartDate.Before(prevEnd) {
			prevEnd = r.PlannedEndDate
			continue
		}
		r.PlannedStartDate = p.cal.AdjustToWorkingTime(prevEnd)
		r.PlannedEndDate = p.cal.AdvanceByWorkingMinutes(r.PlannedStartDate, r.TotalMinutes())
		markRescheduled(r, now, cascadeReason)
		prevEnd = r.PlannedEndDate
	}
}

func markRescheduled(r *domain.PlanningResult, now time.Time, reason string) {
	r.Status = domain.PlanningStatusRescheduled
	rescheduledAt := now
	r.LastRescheduledAt = &rescheduledAt
	r.RescheduledReason = reason
}
