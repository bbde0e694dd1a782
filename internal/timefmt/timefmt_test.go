package timefmt

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		want string
		d    time.Duration
	}{
		{name: "zero", d: 0, want: "0s"},
		{name: "seconds only", d: 45 * time.Second, want: "45s"},
		{name: "minutes and seconds", d: 2*time.Minute + 30*time.Second, want: "2m 30s"},
		{name: "hours and minutes", d: 2*time.Hour + 34*time.Minute, want: "2h 34m"},
		{name: "exact hour", d: time.Hour, want: "1h 0m"},
		{name: "days and hours", d: 26 * time.Hour, want: "1d 2h"},
		{name: "negative", d: -5 * time.Minute, want: "-5m 0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.d); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		name string
		want string
		d    time.Duration
	}{
		{name: "zero", d: 0, want: "0s"},
		{name: "seconds", d: 45 * time.Second, want: "45s"},
		{name: "minutes", d: 2*time.Minute + 30*time.Second, want: "2m"},
		{name: "hours", d: 3 * time.Hour, want: "3h"},
		{name: "days", d: 5 * 24 * time.Hour, want: "5d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compact(tt.d); got != tt.want {
				t.Errorf("Compact(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		seconds int64
	}{
		{name: "zero", seconds: 0, want: "00:00"},
		{name: "under a minute", seconds: 7, want: "00:07"},
		{name: "minutes", seconds: 125, want: "02:05"},
		{name: "hours", seconds: 3725, want: "1:02:05"},
		{name: "negative clamps", seconds: -10, want: "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clock(tt.seconds); got != tt.want {
				t.Errorf("Clock(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}
