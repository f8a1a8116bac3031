package utils

import (
	"testing"
	"time"
)

func TestAddCalendarMonths(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "plain month",
			in:   time.Date(2023, time.November, 30, 10, 30, 0, 0, time.UTC),
			want: time.Date(2023, time.December, 30, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "year rollover",
			in:   time.Date(2023, time.December, 15, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "clamps to short february",
			in:   time.Date(2023, time.January, 31, 8, 0, 0, 0, time.UTC),
			want: time.Date(2023, time.February, 28, 8, 0, 0, 0, time.UTC),
		},
		{
			name: "clamps to leap february",
			in:   time.Date(2024, time.January, 31, 8, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.February, 29, 8, 0, 0, 0, time.UTC),
		},
		{
			name: "clamps 31st to 30-day month",
			in:   time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC),
			want: time.Date(2024, time.April, 30, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		if got := AddCalendarMonths(tt.in, 1); !got.Equal(tt.want) {
			t.Fatalf("%s: AddCalendarMonths(%v, 1) = %v, want %v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestAddCalendarMonthsKeepsClock(t *testing.T) {
	in := time.Date(2023, time.May, 31, 13, 45, 12, 99, time.UTC)
	got := AddCalendarMonths(in, 1)
	if got.Hour() != 13 || got.Minute() != 45 || got.Second() != 12 {
		t.Fatalf("clock time not preserved: got %v", got)
	}
}
