// Package telemetry обеспечивает наблюдаемость планировщика.
//
// Включает:
//   - logging.go — structured logging через slog с контекстом
//     заказа, операции и станка
//   - metrics.go — Prometheus метрики проходов планирования
//
// Демон экспортирует метрики на /metrics endpoint.
package telemetry
