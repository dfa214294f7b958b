// Package engine содержит вычислительные примитивы планировщика.
//
// Включает:
//   - graph.go     — граф зависимостей операций и топологический порядок
//   - selector.go  — подбор совместимого станка для операции
//   - estimator.go — оценка времени обработки, наладки и буфера
//
// Пакет не знает о календаре и о результатах планирования: он отвечает
// только на вопросы "в каком порядке", "на чём" и "сколько минут".
package engine
