package engine

import (
	"github.com/kasuf/thewho-planner/internal/domain"
)

// Базовое время наладки по типу операции, минуты.
const (
	setup4Axis   = 90 // 4-координатное фрезерование — сложная наладка
	setup3Axis   = 60
	setupMilling = 45
	setupTurning = 30 // токарная — самая дешёвая
)

// SameSetupDiscount — доля базового времени наладки, когда станок уже
// налажен под тот же тип операции (переналадка почти не нужна).
const SameSetupDiscount = 0.3

// Estimate — оценка длительности операции на станке, минуты.
type Estimate struct {
	// ExpectedMinutes — чистое время обработки с учётом
	// производительности станка.
	ExpectedMinutes float64

	// SetupMinutes — время наладки.
	SetupMinutes float64

	// BufferMinutes — буфер на вероятный простой станка.
	BufferMinutes float64
}

// Total возвращает полное рабочее окно операции.
func (e Estimate) Total() float64 {
	return e.ExpectedMinutes + e.SetupMinutes + e.BufferMinutes
}

// BaseSetupMinutes возвращает базовое время наладки для типа операции.
func BaseSetupMinutes(t domain.OperationType) float64 {
	switch t {
	case domain.OperationMill4Axis:
		return setup4Axis
	case domain.OperationMill3Axis:
		return setup3Axis
	case domain.OperationMilling:
		return setupMilling
	case domain.OperationTurning:
		return setupTurning
	default:
		return setup3Axis
	}
}

// EstimateDuration оценивает длительность операции на выбранном станке.
//
//	base     = время на деталь × количество деталей заказа
//	expected = base / коэффициент производительности
//	setup    = базовая наладка типа, ×0.3 если станок уже налажен так же
//	buffer   = expected × историческая вероятность простоя
//
// lastSetupType — тип наладки, оставшийся на станке после предыдущей
// запланированной операции (из контекста прохода планирования).
func EstimateDuration(op *domain.Operation, order *domain.Order, machine *domain.MachineProfile, lastSetupType string) Estimate {
	quantity := order.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	baseMinutes := op.TimePerUnit() * float64(quantity)

	efficiency := machine.EfficiencyFactor
	if efficiency <= 0 {
		efficiency = 1
	}
	expected := baseMinutes / efficiency

	setup := BaseSetupMinutes(op.Type)
	if lastSetupType != "" && lastSetupType == op.Type.SetupType() {
		setup *= SameSetupDiscount
	}

	buffer := expected * machine.HistoricalDowntimeProbability

	return Estimate{
		ExpectedMinutes: expected,
		SetupMinutes:    setup,
		BufferMinutes:   buffer,
	}
}
