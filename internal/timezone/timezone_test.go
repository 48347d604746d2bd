package timezone

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

func TestParseCivilDate(t *testing.T) {
	n := NewNormalizer(DefaultTimezone)

	got, err := n.ParseCivilDate("2024-03-15")
	if err != nil {
		t.Fatal(err)
	}
	if got.Hour() != 0 || got.Minute() != 0 || got.Day() != 15 {
		t.Fatalf("expected start of day, got %s", got)
	}
	if got.Location() != n.Location() {
		t.Fatalf("expected %s, got %s", n.Location(), got.Location())
	}
	// 00:00 em São Paulo = 03:00 UTC
	if got.UTC().Hour() != 3 {
		t.Fatalf("expected 03:00 UTC, got %s", got.UTC())
	}
}

func TestParseCivilDateRejectsLooseFormats(t *testing.T) {
	n := NewNormalizer(DefaultTimezone)

	for _, in := range []string{"", "2024-3-15", "15/03/2024", "2024-03-15T10:00:00Z", "2024-02-30", " 2024-03-15"} {
		if _, err := n.ParseCivilDate(in); !httperr.IsKind(err, httperr.KindInvalidFormat) {
			t.Fatalf("%q: expected invalid_format, got %v", in, err)
		}
	}
}

func TestDayBoundaries(t *testing.T) {
	n := NewNormalizer(DefaultTimezone)
	noon := time.Date(2024, 3, 15, 12, 30, 0, 0, n.Location())

	start := n.StartOfDay(noon)
	end := n.EndOfDay(noon)

	if n.FormatCivilDate(start) != "2024-03-15" || n.FormatCivilDate(end) != "2024-03-15" {
		t.Fatalf("boundaries left the civil day: %s .. %s", start, end)
	}
	if !end.Add(time.Nanosecond).Equal(start.AddDate(0, 0, 1)) {
		t.Fatalf("end of day must be one tick before next day, got %s", end)
	}
}

func TestFormatCivilDateUsesFixedZone(t *testing.T) {
	n := NewNormalizer(DefaultTimezone)

	// 01:00 UTC ainda é o dia anterior em São Paulo
	instant := time.Date(2024, 3, 16, 1, 0, 0, 0, time.UTC)
	if got := n.FormatCivilDate(instant); got != "2024-03-15" {
		t.Fatalf("expected 2024-03-15, got %s", got)
	}

	parsed, _ := n.ParseCivilDate("2024-03-15")
	if n.FormatCivilDate(parsed.UTC()) != "2024-03-15" {
		t.Fatal("format must invert parse regardless of the instant's zone")
	}
}

func TestMonthRange(t *testing.T) {
	n := NewNormalizer(DefaultTimezone)

	start, end, err := n.MonthRange(2024, 2)
	if err != nil {
		t.Fatal(err)
	}
	if n.FormatCivilDate(start) != "2024-02-01" || n.FormatCivilDate(end) != "2024-02-29" {
		t.Fatalf("unexpected range %s .. %s", n.FormatCivilDate(start), n.FormatCivilDate(end))
	}

	if _, _, err := n.MonthRange(2024, 13); !httperr.IsBusiness(err, "invalid_month") {
		t.Fatalf("expected invalid_month, got %v", err)
	}
}

func TestLocationFallback(t *testing.T) {
	if Location("Not/AZone").String() != DefaultTimezone {
		t.Fatal("invalid zones fall back to the default")
	}
	if IsValid("") {
		t.Fatal("empty zone is invalid")
	}
}
