package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kasuf/thewho-planner/internal/telemetry"
)

// DefaultHebcalURL — адрес Hebcal REST API.
// https://www.hebcal.com/home/195/jewish-calendar-rest-api
const DefaultHebcalURL = "https://www.hebcal.com/hebcal"

// hebcalItem — одно событие в ответе Hebcal.
type hebcalItem struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Subcat   string `json:"subcat,omitempty"`
	YomTov   bool   `json:"yomtov"`
	Major    bool   `json:"major"`
}

// hebcalResponse — ответ Hebcal API.
type hebcalResponse struct {
	Title string       `json:"title"`
	Items []hebcalItem `json:"items"`
}

// HebcalFeed — клиент Hebcal API.
//
// Запрашивает только основные религиозные праздники и современные
// государственные выходные (День независимости, дни памяти);
// шаббат исключён — недельное окно отдыха учитывает его отдельно.
type HebcalFeed struct {
	baseURL string
	client  *http.Client
}

// HebcalOption настраивает HebcalFeed.
type HebcalOption func(*HebcalFeed)

// WithBaseURL подменяет адрес API (для тестов).
func WithBaseURL(u string) HebcalOption {
	return func(f *HebcalFeed) { f.baseURL = u }
}

// WithHTTPClient подменяет HTTP-клиент.
func WithHTTPClient(client *http.Client) HebcalOption {
	return func(f *HebcalFeed) { f.client = client }
}

// NewHebcalFeed создаёт клиент с таймаутом по умолчанию.
func NewHebcalFeed(opts ...HebcalOption) *HebcalFeed {
	f := &HebcalFeed{
		baseURL: DefaultHebcalURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// HolidaysForYear загружает праздничные даты года.
func (f *HebcalFeed) HolidaysForYear(ctx context.Context, year int) ([]time.Time, error) {
	params := url.Values{
		"v":    {"1"},
		"cfg":  {"json"},
		"maj":  {"on"},  // основные праздники
		"min":  {"off"}, // без второстепенных событий
		"nx":   {"off"}, // без Рош Ходеш
		"mf":   {"off"}, // без постных дней
		"nh":   {"off"},
		"mod":  {"on"}, // современные израильские праздники
		"s":    {"off"},
		"c":    {"off"},
		"geo":  {"city"},
		"city": {"Jerusalem"},
		"year": {strconv.Itoa(year)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build hebcal request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch hebcal year %d: %w", year, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hebcal year %d: unexpected status %d", year, resp.StatusCode)
	}

	var payload hebcalResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode hebcal response: %w", err)
	}

	holidays := make([]time.Time, 0, len(payload.Items))
	for _, item := range payload.Items {
		if !isHolidayItem(item) {
			continue
		}
		d, err := parseHebcalDate(item.Date)
		if err != nil {
			continue // пропускаем недействительные даты
		}
		holidays = append(holidays, d)
	}

	telemetry.FromContext(ctx).Debug("праздники Hebcal загружены",
		"year", year,
		"items", len(payload.Items),
		"holidays", len(holidays))
	return holidays, nil
}

// isHolidayItem отбирает религиозные праздники и государственные выходные.
func isHolidayItem(item hebcalItem) bool {
	if item.YomTov || item.Major {
		return true
	}
	if item.Category == "modern" || item.Category == "il" {
		title := strings.ToLower(item.Title)
		return strings.Contains(title, "independence") ||
			strings.Contains(title, "memorial") ||
			strings.Contains(title, "holocaust") ||
			strings.Contains(item.Title, "יום העצמאות") ||
			strings.Contains(item.Title, "יום הזיכרון") ||
			strings.Contains(item.Title, "יום השואה")
	}
	return false
}

// parseHebcalDate разбирает дату события: либо чистая дата, либо
// таймстемп с временем и зоной.
func parseHebcalDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
