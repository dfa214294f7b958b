package calendar

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Рабочий день цеха.
const (
	// WorkdayStartHour — начало рабочего дня.
	WorkdayStartHour = 8

	// WorkdayEndHour — конец рабочего дня (воскресенье–четверг).
	WorkdayEndHour = 16

	// FridayEndHour — конец рабочего дня в пятницу.
	FridayEndHour = 14

	// SaturdayRestEndHour — примерное окончание субботнего отдыха
	// (выход звёзд; после него суббота формально не выходной).
	SaturdayRestEndHour = 20
)

// DefaultCacheTTL — срок жизни кэша праздников.
const DefaultCacheTTL = 24 * time.Hour

// Clock — источник текущего времени. В тестах подменяется фиксированным.
type Clock func() time.Time

// HolidayFeed — источник праздничных дат для года.
// Реализуется клиентом Hebcal (feed.go) и стабами в тестах.
type HolidayFeed interface {
	HolidaysForYear(ctx context.Context, year int) ([]time.Time, error)
}

// FeedFunc адаптирует функцию к интерфейсу HolidayFeed.
type FeedFunc func(ctx context.Context, year int) ([]time.Time, error)

// HolidaysForYear реализует HolidayFeed.
func (f FeedFunc) HolidaysForYear(ctx context.Context, year int) ([]time.Time, error) {
	return f(ctx, year)
}

// civilDate — календарная дата без времени суток.
type civilDate struct {
	year  int
	month time.Month
	day   int
}

func toCivil(t time.Time) civilDate {
	y, m, d := t.Date()
	return civilDate{y, m, d}
}

// holidayCache — закэшированные праздники одного года.
type holidayCache struct {
	days      map[civilDate]struct{}
	fetchedAt time.Time
}

// Calendar — производственный календарь.
//
// Единственная точка блокировки движка — загрузка праздников; она
// ограничена таймаутом HTTP-клиента feed'а и при ошибке заменяется
// резервной таблицей. Кэш защищён мьютексом, остальная арифметика чистая.
type Calendar struct {
	feed         HolidayFeed
	clock        Clock
	ttl          time.Duration
	fetchTimeout time.Duration
	logger       *slog.Logger

	mu    sync.RWMutex
	years map[int]holidayCache
}

// Option настраивает Calendar.
type Option func(*Calendar)

// WithClock подменяет источник времени (для тестов).
func WithClock(clock Clock) Option {
	return func(c *Calendar) { c.clock = clock }
}

// WithCacheTTL задаёт срок жизни кэша праздников.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Calendar) { c.ttl = ttl }
}

// WithFetchTimeout задаёт таймаут одного обращения к feed'у.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *Calendar) { c.fetchTimeout = d }
}

// WithLogger задаёт логгер.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calendar) { c.logger = logger }
}

// New создаёт календарь поверх источника праздников.
func New(feed HolidayFeed, opts ...Option) *Calendar {
	c := &Calendar{
		feed:         feed,
		clock:        time.Now,
		ttl:          DefaultCacheTTL,
		fetchTimeout: 10 * time.Second,
		logger:       slog.Default(),
		years:        make(map[int]holidayCache),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DayCapacityMinutes возвращает рабочую ёмкость дня недели в минутах:
// воскресенье–четверг 480, пятница 360, суббота 0.
func DayCapacityMinutes(wd time.Weekday) int {
	switch wd {
	case time.Friday:
		return 360
	case time.Saturday:
		return 0
	default:
		return 480
	}
}

// dayEndHour — час окончания рабочего дня для дня недели.
func dayEndHour(wd time.Weekday) int {
	if wd == time.Friday {
		return FridayEndHour
	}
	return WorkdayEndHour
}

// IsRestWindow возвращает true, если момент попадает в недельное окно
// отдыха: с пятницы 14:00 (не включая саму границу — момент окончания
// работы считается рабочим) до субботы 20:00.
func (c *Calendar) IsRestWindow(t time.Time) bool {
	switch t.Weekday() {
	case time.Friday:
		if t.Hour() > FridayEndHour {
			return true
		}
		return t.Hour() == FridayEndHour && (t.Minute() > 0 || t.Second() > 0 || t.Nanosecond() > 0)
	case time.Saturday:
		return t.Hour() < SaturdayRestEndHour
	default:
		return false
	}
}

// IsHoliday возвращает true, если на дату момента приходится праздник.
func (c *Calendar) IsHoliday(t time.Time) bool {
	days := c.holidaySet(t.Year())
	_, ok := days[toCivil(t)]
	return ok
}

// IsWorkingInstant возвращает true, если момент находится внутри
// производственного времени: вне недельного окна отдыха и не в праздник.
func (c *Calendar) IsWorkingInstant(t time.Time) bool {
	return !c.IsRestWindow(t) && !c.IsHoliday(t)
}

// isWorkingDay — однодневная проверка: день имеет ненулевую рабочую
// ёмкость и не является праздником.
func (c *Calendar) isWorkingDay(t time.Time) bool {
	if DayCapacityMinutes(t.Weekday()) == 0 {
		return false
	}
	return !c.IsHoliday(t)
}

// NextWorkingInstant возвращает начало (08:00) ближайшего рабочего дня
// строго после t.
func (c *Calendar) NextWorkingInstant(t time.Time) time.Time {
	next := startOfWorkday(t.AddDate(0, 0, 1))
	for !c.isWorkingDay(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// AdjustToWorkingTime приводит момент внутрь рабочего времени:
// нерабочий день или время после закрытия — к началу следующего рабочего
// дня, время до открытия — к 08:00 того же дня.
func (c *Calendar) AdjustToWorkingTime(t time.Time) time.Time {
	if !c.isWorkingDay(t) {
		return c.NextWorkingInstant(t)
	}
	if t.Hour() < WorkdayStartHour {
		return startOfWorkday(t)
	}
	if t.Hour() >= dayEndHour(t.Weekday()) {
		return c.NextWorkingInstant(t)
	}
	return t
}

// AdvanceByWorkingMinutes возвращает момент, отстоящий от start на minutes
// минут рабочего времени. Идёт день за днём: каждый день вносит вклад не
// больше своей ёмкости, частично израсходованная ёмкость стартового дня
// учитывается, нерабочие дни пропускаются. Результат всегда удовлетворяет
// IsWorkingInstant.
//
// При minutes <= 0 возвращает start без изменений.
func (c *Calendar) AdvanceByWorkingMinutes(start time.Time, minutes float64) time.Time {
	if minutes <= 0 {
		return start
	}

	cur := start
	remaining := minutes

	for remaining > 0 {
		if !c.isWorkingDay(cur) {
			cur = c.NextWorkingInstant(cur)
			continue
		}

		capacity := DayCapacityMinutes(cur.Weekday())
		endHour := dayEndHour(cur.Weekday())

		if cur.Hour() < WorkdayStartHour {
			cur = startOfWorkday(cur)
		}
		if cur.Hour() >= endHour {
			cur = c.NextWorkingInstant(cur)
			continue
		}

		// Сколько минут дня уже израсходовано к текущему моменту.
		used := float64((cur.Hour()-WorkdayStartHour)*60+cur.Minute()) +
			float64(cur.Second())/60
		available := float64(capacity) - used
		if available <= 0 {
			cur = c.NextWorkingInstant(cur)
			continue
		}

		if remaining <= available {
			cur = cur.Add(time.Duration(remaining * float64(time.Minute)))
			remaining = 0
		} else {
			remaining -= available
			cur = c.NextWorkingInstant(cur)
		}
	}

	return cur
}

// WorkingMinutesBetween возвращает количество рабочих минут между двумя
// моментами, считая полные ёмкости дней диапазона.
func (c *Calendar) WorkingMinutesBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	total := 0
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		if c.isWorkingDay(cur) {
			total += DayCapacityMinutes(cur.Weekday())
		}
	}
	return total
}

// HolidaysForYear возвращает праздничные даты года. Результат кэшируется
// на срок ttl; при ошибке загрузки возвращается резервная таблица —
// ошибка логируется и не поднимается к вызывающему.
func (c *Calendar) HolidaysForYear(year int) []time.Time {
	days := c.holidaySet(year)
	out := make([]time.Time, 0, len(days))
	for d := range days {
		out = append(out, time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Prefetch прогревает кэш праздников для перечисленных лет.
// Загрузка идёт параллельно; ошибки отдельных лет уже поглощены
// резервной таблицей, поэтому Prefetch завершается успешно всегда,
// кроме отмены контекста.
func (c *Calendar) Prefetch(ctx context.Context, years ...int) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, year := range years {
		year := year
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c.holidaySet(year)
			return nil
		})
	}
	return g.Wait()
}

// holidaySet возвращает множество праздничных дат года, при
// необходимости загружая и кэшируя его.
func (c *Calendar) holidaySet(year int) map[civilDate]struct{} {
	now := c.clock()

	c.mu.RLock()
	cached, ok := c.years[year]
	c.mu.RUnlock()
	if ok && now.Sub(cached.fetchedAt) < c.ttl {
		return cached.days
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.fetchTimeout)
	defer cancel()

	dates, err := c.feed.HolidaysForYear(ctx, year)
	if err != nil {
		c.logger.Warn("holiday feed unavailable, using fallback table",
			"year", year, "error", err)
		dates = FallbackHolidays(year)
	} else {
		c.logger.Debug("holidays loaded", "year", year, "count", len(dates))
	}

	days := make(map[civilDate]struct{}, len(dates))
	for _, d := range dates {
		days[toCivil(d)] = struct{}{}
	}

	c.mu.Lock()
	c.years[year] = holidayCache{days: days, fetchedAt: now}
	c.mu.Unlock()

	return days
}

// ClearCache сбрасывает кэш праздников.
func (c *Calendar) ClearCache() {
	c.mu.Lock()
	c.years = make(map[int]holidayCache)
	c.mu.Unlock()
}

// startOfWorkday — 08:00 того же дня в той же временной зоне.
func startOfWorkday(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, WorkdayStartHour, 0, 0, 0, t.Location())
}
