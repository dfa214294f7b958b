package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlanningResult — запланированный интервал выполнения одной операции.
//
// В каждый момент времени операции соответствует не больше одного
// актуального результата. Создаётся проходом планирования; изменяется
// ручной правкой, завершением наладки, форс-мажором или каскадным
// переносом. При изменении начала или длительности результат переходит
// в статус rescheduled с отметкой времени и причиной.
type PlanningResult struct {
	// ID — уникальный идентификатор результата.
	ID uuid.UUID `json:"id"`

	// OrderID — заказ, которому принадлежит операция.
	OrderID string `json:"order_id"`

	// OperationID — запланированная операция.
	OperationID string `json:"operation_id"`

	// Machine — назначенный станок.
	Machine string `json:"machine"`

	// PlannedStartDate — плановое начало (рабочий момент календаря).
	PlannedStartDate time.Time `json:"planned_start_date"`

	// PlannedEndDate — плановое окончание. Всегда >= PlannedStartDate.
	PlannedEndDate time.Time `json:"planned_end_date"`

	// QuantityAssigned — назначенное количество деталей.
	QuantityAssigned int `json:"quantity_assigned"`

	// RemainingQuantity — остаток к изготовлению.
	RemainingQuantity int `json:"remaining_quantity"`

	// ExpectedTimeMinutes — чистое время обработки, минуты.
	ExpectedTimeMinutes float64 `json:"expected_time_minutes"`

	// SetupTimeMinutes — время наладки, минуты.
	SetupTimeMinutes float64 `json:"setup_time_minutes"`

	// BufferTimeMinutes — буферное время на вероятный простой, минуты.
	BufferTimeMinutes float64 `json:"buffer_time_minutes"`

	// Status — статус результата.
	Status PlanningStatus `json:"status"`

	// LastRescheduledAt — время последнего переноса.
	LastRescheduledAt *time.Time `json:"last_rescheduled_at,omitempty"`

	// RescheduledReason — причина последнего переноса.
	// Движок заполняет её всегда, когда меняет результат
	// не по прямой правке пользователя.
	RescheduledReason string `json:"rescheduled_reason,omitempty"`
}

// TotalMinutes возвращает полное рабочее окно операции:
// обработка + наладка + буфер.
func (r *PlanningResult) TotalMinutes() float64 {
	return r.ExpectedTimeMinutes + r.SetupTimeMinutes + r.BufferTimeMinutes
}
