// Пакет cli — команды инструмента thewho-planner.
//
// Включает:
//   - plan.go     — разовый проход планирования по файлу заказов
//   - check.go    — оценка рисков действующего плана
//   - holidays.go — просмотр праздников рабочего календаря
//   - serve.go    — демон регулярного перепланирования с метриками
//   - output.go   — табличный и JSON-вывод
//   - setup.go    — сборка календаря, каталога и планировщика из конфигурации
package cli
