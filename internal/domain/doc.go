// Package domain содержит доменные типы движка планирования производства.
//
// Включает:
//   - order.go   — заказ (Order) и операция (Operation)
//   - machine.go — профиль станка (MachineProfile)
//   - result.go  — результат планирования (PlanningResult)
//   - event.go   — форс-мажорное событие (ForceMajeure)
//   - alert.go   — оповещение (Alert)
//   - status.go  — статусы и закрытые перечисления
//
// Типы загружаются хост-приложением (БД, Excel-импорт) и передаются движку
// в память. Движок не выполняет ввод-вывод доменных данных.
package domain
