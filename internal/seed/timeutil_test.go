package seed

import (
	"strings"
	"testing"
	"time"
)

func TestMealTimeOfDayWindows(t *testing.T) {
	t.Parallel()
	g := NewRNG(7)
	cases := []struct {
		mealType string
		min, max int
	}{
		{"breakfast", 6, 9},
		{"lunch", 11, 13},
		{"dinner", 17, 20},
		{"snack", 14, 16},
		{"second-breakfast", 8, 20},
	}
	for _, tc := range cases {
		for i := 0; i < 200; i++ {
			ts, err := g.mealTimeOfDay("2026-03-15", tc.mealType)
			if err != nil {
				t.Fatalf("mealTimeOfDay(%s): %v", tc.mealType, err)
			}
			if ts.Hour() < tc.min || ts.Hour() > tc.max {
				t.Fatalf("%s hour %d outside [%d,%d]", tc.mealType, ts.Hour(), tc.min, tc.max)
			}
			if ts.Format(dateLayout) != "2026-03-15" {
				t.Fatalf("%s timestamp landed on wrong date %s", tc.mealType, ts.Format(dateLayout))
			}
		}
	}
}

func TestMealTimeOfDayRejectsBadDate(t *testing.T) {
	t.Parallel()
	g := NewRNG(8)
	if _, err := g.mealTimeOfDay("not-a-date", "lunch"); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func TestDaysAgo(t *testing.T) {
	t.Parallel()
	if got, want := daysAgo(0), time.Now().Format(dateLayout); got != want {
		t.Fatalf("daysAgo(0) = %s, want %s", got, want)
	}
	if got, want := daysAgo(7), time.Now().AddDate(0, 0, -7).Format(dateLayout); got != want {
		t.Fatalf("daysAgo(7) = %s, want %s", got, want)
	}
}

func TestDatesBetweenInclusiveAscending(t *testing.T) {
	t.Parallel()
	dates := datesBetween(5, 2)
	if len(dates) != 4 {
		t.Fatalf("expected 4 dates, got %d", len(dates))
	}
	if dates[0] != daysAgo(5) || dates[3] != daysAgo(2) {
		t.Fatalf("unexpected endpoints: %v", dates)
	}
	for i := 1; i < len(dates); i++ {
		if dates[i] <= dates[i-1] {
			t.Fatalf("dates not ascending: %v", dates)
		}
	}
}

func TestGenerateIDShape(t *testing.T) {
	t.Parallel()
	g := NewRNG(9)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := g.generateID("log")
		if !strings.HasPrefix(id, "log-") {
			t.Fatalf("id %q missing prefix", id)
		}
		if parts := strings.Split(id, "-"); len(parts) != 3 {
			t.Fatalf("id %q not in prefix-ts-random form", id)
		}
		seen[id] = true
	}
	if len(seen) < 95 {
		t.Fatalf("expected ids to be unique in practice, got %d distinct of 100", len(seen))
	}
}

func TestDateID(t *testing.T) {
	t.Parallel()
	if got := dateID("weight", "2026-01-02"); got != "weight-2026-01-02" {
		t.Fatalf("dateID = %q", got)
	}
}
