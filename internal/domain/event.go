package domain

import (
	"time"

	"github.com/google/uuid"
)

// ForceMajeure — незапланированное нарушение производства:
// поломка станка, нехватка инструмента, отсутствие оператора и т.д.
//
// Автоматический вывод станка выполняется только для поломки
// (Type == machine_breakdown при EntityType == machine): операции
// уходят на совместимые станки, затронутые заказы пересчитываются.
// Остальные виды, включая прочие события станков, автоматической
// реакции не имеют — затронутые заказы лишь пересчитываются по
// текущему состоянию.
type ForceMajeure struct {
	// ID — уникальный идентификатор события.
	ID uuid.UUID `json:"id"`

	// Type — вид события.
	Type ForceMajeureType `json:"type"`

	// EntityType — тип затронутой сущности: станок, оператор или заказ.
	EntityType EntityType `json:"entity_type"`

	// EntityID — идентификатор затронутой сущности
	// (для станка — имя из каталога).
	EntityID string `json:"entity_id"`

	// StartTime — время начала события.
	StartTime time.Time `json:"start_time"`

	// EstimatedDurationMinutes — ожидаемая длительность, минуты.
	EstimatedDurationMinutes float64 `json:"estimated_duration_minutes"`

	// ActualDurationMinutes — фактическая длительность, минуты
	// (заполняется при разрешении).
	ActualDurationMinutes float64 `json:"actual_duration_minutes,omitempty"`

	// Status — статус события.
	Status ForceMajeureStatus `json:"status"`

	// AffectedOrders — идентификаторы затронутых заказов.
	AffectedOrders []string `json:"affected_orders"`

	// AffectedOperations — идентификаторы затронутых операций.
	AffectedOperations []string `json:"affected_operations,omitempty"`

	// Description — описание события.
	Description string `json:"description"`

	// CreatedAt — время регистрации события.
	CreatedAt time.Time `json:"created_at"`

	// ResolvedAt — время разрешения события.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// AffectsOrder возвращает true, если заказ входит в список затронутых.
func (f *ForceMajeure) AffectsOrder(orderID string) bool {
	for _, id := range f.AffectedOrders {
		if id == orderID {
			return true
		}
	}
	return false
}
