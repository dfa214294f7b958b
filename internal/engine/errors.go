package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrNoOperations — у заказа нет операций.
	ErrNoOperations = errors.New("order has no operations")

	// ErrDuplicateSequence — несколько операций с одним sequence number.
	ErrDuplicateSequence = errors.New("duplicate operation sequence number")

	// ErrCyclicDependency — обнаружен цикл в зависимостях операций.
	// Данные-цепочка цикл дать не могут, но обобщённый граф обязан
	// защищаться от него.
	ErrCyclicDependency = errors.New("cyclic dependency detected")

	// ErrUnknownOperation — ребро ссылается на несуществующую операцию.
	ErrUnknownOperation = errors.New("dependency on unknown operation")

	// ErrNoCompatibleMachine — ни один станок каталога не подходит
	// под тип операции. Для прохода планирования это нефатально:
	// операция пропускается с записью в лог.
	ErrNoCompatibleMachine = errors.New("no compatible machine")
)

// GraphError — ошибка построения графа зависимостей с контекстом.
type GraphError struct {
	OrderID     string // заказ, в котором произошла ошибка
	OperationID string // операция, вызвавшая ошибку (может быть пустой)
	Err         error  // базовая ошибка
}

// Error реализует интерфейс error.
func (e *GraphError) Error() string {
	if e.OperationID != "" {
		return fmt.Sprintf("order %s: operation %s: %v", e.OrderID, e.OperationID, e.Err)
	}
	return fmt.Sprintf("order %s: %v", e.OrderID, e.Err)
}

// Unwrap возвращает базовую ошибку.
func (e *GraphError) Unwrap() error {
	return e.Err
}
