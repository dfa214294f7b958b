// Package calendar реализует производственный календарь с учётом
// израильской рабочей недели и еврейских праздников.
//
// Включает:
//   - calendar.go — арифметика рабочего времени (IsWorkingInstant,
//     NextWorkingInstant, AdvanceByWorkingMinutes)
//   - feed.go     — клиент Hebcal API для загрузки праздников
//   - fallback.go — резервная таблица праздников на случай недоступности API
//
// Рабочая неделя: воскресенье–четверг 08:00–16:00, пятница 08:00–14:00,
// отдых с пятницы 14:00 до субботы 20:00. Праздники кэшируются на 24 часа
// по годам; ошибка загрузки никогда не прерывает планирование — календарь
// молча переходит на резервную таблицу.
package calendar
