package calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHebcalFeed_HolidaysForYear(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Проверяем ключевые параметры запроса
		q := r.URL.Query()
		if q.Get("cfg") != "json" {
			t.Errorf("expected cfg=json, got %q", q.Get("cfg"))
		}
		if q.Get("maj") != "on" || q.Get("mod") != "on" {
			t.Error("expected maj=on and mod=on")
		}
		if q.Get("city") != "Jerusalem" {
			t.Errorf("expected city=Jerusalem, got %q", q.Get("city"))
		}
		if q.Get("year") != "2025" {
			t.Errorf("expected year=2025, got %q", q.Get("year"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"title": "Hebcal Jerusalem 2025",
			"items": [
				{"title": "Rosh Hashana 5786", "date": "2025-09-23", "category": "holiday", "yomtov": true, "major": true},
				{"title": "Yom Kippur", "date": "2025-10-02T00:00:00+03:00", "category": "holiday", "yomtov": true, "major": true},
				{"title": "Yom HaAtzmaut (Independence Day)", "date": "2025-05-01", "category": "modern"},
				{"title": "Tu BiShvat", "date": "2025-02-13", "category": "holiday", "minor": true},
				{"title": "Sigd", "date": "2025-11-20", "category": "modern"}
			]
		}`))
	}))
	defer srv.Close()

	feed := NewHebcalFeed(WithBaseURL(srv.URL))
	holidays, err := feed.HolidaysForYear(context.Background(), 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Рош ха-Шана, Йом Кипур, День независимости; Ту би-Шват и Сигд
	// отфильтрованы
	if len(holidays) != 3 {
		t.Fatalf("expected 3 holidays, got %d: %v", len(holidays), holidays)
	}

	want := time.Date(2025, time.September, 23, 0, 0, 0, 0, time.UTC)
	if !holidays[0].Equal(want) {
		t.Errorf("expected %v, got %v", want, holidays[0])
	}
}

func TestHebcalFeed_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	feed := NewHebcalFeed(WithBaseURL(srv.URL))
	if _, err := feed.HolidaysForYear(context.Background(), 2025); err == nil {
		t.Error("expected error on HTTP 500")
	}
}

func TestHebcalFeed_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"items": []}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	feed := NewHebcalFeed(WithBaseURL(srv.URL))
	if _, err := feed.HolidaysForYear(ctx, 2025); err == nil {
		t.Error("expected error on cancelled context")
	}
}

func TestIsHolidayItem(t *testing.T) {
	tests := []struct {
		name string
		item hebcalItem
		want bool
	}{
		{"yom tov", hebcalItem{Title: "Pesach I", YomTov: true}, true},
		{"major without yomtov", hebcalItem{Title: "Chanukah", Major: true}, true},
		{"modern independence", hebcalItem{Title: "Yom HaAtzmaut (Independence Day)", Category: "modern"}, true},
		{"modern memorial", hebcalItem{Title: "Yom HaZikaron (Memorial Day)", Category: "modern"}, true},
		{"hebrew title", hebcalItem{Title: "יום העצמאות", Category: "il"}, true},
		{"modern non-holiday", hebcalItem{Title: "Sigd", Category: "modern"}, false},
		{"minor event", hebcalItem{Title: "Tu BiShvat", Category: "holiday"}, false},
	}
	for _, tt := range tests {
		if got := isHolidayItem(tt.item); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}
