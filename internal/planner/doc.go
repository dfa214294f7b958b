// Пакет planner — проход планирования производства.
//
// Планировщик принимает заказы, упорядочивает их по приоритету и
// дедлайну, строит порядок выполнения операций (engine), выбирает
// станки, оценивает длительности и раскладывает операции по рабочему
// календарю (calendar). Результат прохода — набор PlanningResult.
//
// Помимо прохода пакет содержит:
//   - update.go — ручная правка результата и каскадный перенос зависимых
//   - adaptive.go — перерасчёт по фактическим данным смен
//   - forcemajeure.go — обработка форс-мажоров
//   - alerts.go — оценка рисков по дедлайнам и загрузке станков
//
// Планировщик не хранит состояние между проходами: всё, что ему нужно,
// передаётся аргументами, а результат возвращается вызывающему. Это
// делает проход детерминированным при фиксированных входе и часах.
package planner
