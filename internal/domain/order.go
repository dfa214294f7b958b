package domain

import (
	"time"
)

// Order — производственный заказ.
//
// Заказ содержит упорядоченный список операций обработки.
// Инвариант: номера операций (SequenceNumber) внутри заказа уникальны
// и строго возрастают.
type Order struct {
	// ID — идентификатор заказа (назначается хост-приложением).
	ID string `json:"id" yaml:"id"`

	// DrawingNumber — номер чертежа детали.
	DrawingNumber string `json:"drawing_number" yaml:"drawing_number"`

	// Quantity — количество деталей в заказе (целое, > 0).
	Quantity int `json:"quantity" yaml:"quantity"`

	// Priority — приоритет заказа. Больше — срочнее.
	Priority int `json:"priority" yaml:"priority"`

	// Deadline — срок сдачи заказа.
	Deadline time.Time `json:"deadline" yaml:"deadline"`

	// Operations — операции обработки в порядке выполнения.
	Operations []Operation `json:"operations" yaml:"operations"`
}

// IsOverdue возвращает true, если дедлайн заказа уже прошёл.
func (o *Order) IsOverdue(now time.Time) bool {
	return o.Deadline.Before(now)
}

// Operation — отдельная операция обработки внутри заказа.
//
// Операция принадлежит ровно одному заказу. Её статус и фактическое
// время меняет цеховая отчётность; планировщик меняет только подсказку
// предпочтительного станка при форс-мажоре.
type Operation struct {
	// ID — идентификатор операции.
	ID string `json:"id" yaml:"id"`

	// OrderID — ссылка на заказ-владелец.
	OrderID string `json:"order_id" yaml:"order_id"`

	// SequenceNumber — позиция в технологической цепочке заказа (1..N).
	SequenceNumber int `json:"sequence_number" yaml:"sequence_number"`

	// Type — тип обработки.
	Type OperationType `json:"operation_type" yaml:"operation_type"`

	// PreferredMachine — предпочтительный станок (опционально).
	// Выбирается, если совместим и активен.
	PreferredMachine string `json:"preferred_machine,omitempty" yaml:"preferred_machine,omitempty"`

	// EstimatedTimePerUnit — плановое время на деталь, минуты (>= 0).
	EstimatedTimePerUnit float64 `json:"estimated_time_per_unit" yaml:"estimated_time_per_unit"`

	// ActualTimePerUnit — наблюдаемое время на деталь, минуты.
	// Заполняется адаптивным планированием по данным смен;
	// когда задано (> 0), вытесняет плановую оценку.
	ActualTimePerUnit float64 `json:"actual_time_per_unit,omitempty" yaml:"actual_time_per_unit,omitempty"`

	// CompletedUnits — количество уже изготовленных деталей.
	CompletedUnits int `json:"completed_units" yaml:"completed_units"`

	// Status — статус выполнения операции.
	Status OperationStatus `json:"status" yaml:"status"`
}

// TimePerUnit возвращает время на деталь для планирования:
// наблюдаемое, если оно известно, иначе плановую оценку.
func (op *Operation) TimePerUnit() float64 {
	if op.ActualTimePerUnit > 0 {
		return op.ActualTimePerUnit
	}
	return op.EstimatedTimePerUnit
}

// IsCompleted возвращает true, если операция выполнена: либо по статусу,
// либо по количеству изготовленных деталей.
func (op *Operation) IsCompleted(orderQuantity int) bool {
	if op.Status == OperationStatusCompleted {
		return true
	}
	return orderQuantity > 0 && op.CompletedUnits >= orderQuantity
}
