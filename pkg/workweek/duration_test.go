package workweek

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleDurations = []Duration{
	0,
	Millisecond,
	-Millisecond,
	NewDuration(0, 8, 0, 0, 0),
	NewDuration(0, 0, -90, 0, 0),
	NewDuration(2, 3, 25, 10, 999),
	NewDuration(-14, 0, 0, 0, 0),
	NewDuration(0, 30, 0, 0, 0),
}

func TestNewDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration Duration
		wantMs   int64
		days     int64
		hours    int64
		minutes  int64
		seconds  int64
		millis   int64
	}{
		{
			name:     "plain hours",
			duration: NewDuration(0, 8, 0, 0, 0),
			wantMs:   8 * 60 * 60 * 1000,
			hours:    8,
		},
		{
			name:     "out of range hours fold into days",
			duration: NewDuration(0, 30, 0, 0, 0),
			wantMs:   30 * 60 * 60 * 1000,
			days:     1,
			hours:    6,
		},
		{
			name:     "mixed components",
			duration: NewDuration(2, 3, 25, 0, 0),
			wantMs:   ((2*24+3)*60 + 25) * 60 * 1000,
			days:     2,
			hours:    3,
			minutes:  25,
		},
		{
			name:     "milliseconds carry into seconds",
			duration: NewDuration(0, 0, 0, 1, 1500),
			wantMs:   2500,
			seconds:  2,
			millis:   500,
		},
		{
			name:     "negative components carry the sign",
			duration: NewDuration(0, 0, -90, 0, 0),
			wantMs:   -90 * 60 * 1000,
			hours:    -1,
			minutes:  -30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.duration

			assert.Equal(t, tt.wantMs, d.Milliseconds())
			assert.Equal(t, tt.days, d.Days())
			assert.Equal(t, tt.hours, d.Hours())
			assert.Equal(t, tt.minutes, d.Minutes())
			assert.Equal(t, tt.seconds, d.Seconds())
			assert.Equal(t, tt.millis, d.Millis())

			// The components recompose the total without loss
			recomposed := NewDuration(d.Days(), d.Hours(), d.Minutes(), d.Seconds(), d.Millis())
			assert.Equal(t, d, recomposed)
		})
	}
}

func TestDuration_Totals(t *testing.T) {
	d := NewDuration(1, 12, 0, 0, 0)

	assert.InDelta(t, 1.5, d.TotalDays(), 1e-9)
	assert.InDelta(t, 36.0, d.TotalHours(), 1e-9)
	assert.InDelta(t, 2160.0, d.TotalMinutes(), 1e-9)
	assert.InDelta(t, 129600.0, d.TotalSeconds(), 1e-9)
}

func TestDuration_Arithmetic(t *testing.T) {
	for _, d := range sampleDurations {
		assert.True(t, d.Add(d.Neg()).IsZero(), "%s + -%s should be zero", d, d)

		for _, e := range sampleDurations {
			assert.Equal(t, 0, d.Add(e).Sub(e).Compare(d), "(%s + %s) - %s should be %s", d, e, e, d)
		}
	}

	assert.Equal(t, NewDuration(0, 24, 0, 0, 0), Hour.Mul(24))
	assert.Equal(t, Hour, Hour.Neg().Abs())
}

func TestDuration_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b Duration
		want int
	}{
		{"less", Minute, Hour, -1},
		{"equal", NewDuration(0, 1, 0, 0, 0), Hour, 0},
		{"greater", Hour, Minute, 1},
		{"negative is less than zero", -Millisecond, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
		})
	}

	assert.Equal(t, -1, (-Hour).Sign())
	assert.Equal(t, 0, Duration(0).Sign())
	assert.Equal(t, 1, Hour.Sign())
}

func TestDuration_Std(t *testing.T) {
	assert.Equal(t, 90*time.Minute, NewDuration(0, 1, 30, 0, 0).Std())
	assert.Equal(t, 1500*Millisecond, FromStd(1500*time.Millisecond+999*time.Microsecond))
	assert.Equal(t, -Hour, FromStd(-time.Hour))
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Duration
		wantErr bool
	}{
		{"8 hours", "PT8H", NewDuration(0, 8, 0, 0, 0), false},
		{"1 hour 30 minutes", "PT1H30M", NewDuration(0, 1, 30, 0, 0), false},
		{"90 minutes", "PT90M", NewDuration(0, 0, 90, 0, 0), false},
		{"day and hours", "P1DT2H", NewDuration(1, 2, 0, 0, 0), false},
		{"2 weeks", "P2W", NewDuration(14, 0, 0, 0, 0), false},
		{"week and days", "P1W2D", NewDuration(9, 0, 0, 0, 0), false},
		{"fractional seconds", "PT0.25S", 250 * Millisecond, false},
		{"hours and fractional seconds", "PT1H0.5S", NewDuration(0, 1, 0, 0, 500), false},
		{"negative", "-PT2H", NewDuration(0, -2, 0, 0, 0), false},
		{"explicit plus", "+PT15M", 15 * Minute, false},
		{"Empty string", "", 0, true},
		{"Go syntax", "8h", 0, true},
		{"No components", "P", 0, true},
		{"Empty time part", "PT", 0, true},
		{"Trailing T", "P1DT", 0, true},
		{"Months are ambiguous", "P1M", 0, true},
		{"Missing designator", "PT5", 0, true},
		{"Bad number", "PTxH", 0, true},
		{"Too precise", "PT1.2345S", 0, true},
		{"Wrong order", "PT30M1H", 0, true},
		{"Weeks out of range", "P999999999999999W", 0, true},
		{"Days overflow the sum", "P15000000000W3000000000D", 0, true},
		{"Seconds out of range", "PT9223372036854775S", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDuration)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDuration_String(t *testing.T) {
	tests := []struct {
		name     string
		duration Duration
		want     string
	}{
		{"zero", 0, "PT0S"},
		{"8 hours", NewDuration(0, 8, 0, 0, 0), "PT8H"},
		{"1 hour 30 minutes", NewDuration(0, 0, 90, 0, 0), "PT1H30M"},
		{"day and hours", NewDuration(0, 26, 0, 0, 0), "P1DT2H"},
		{"whole days", NewDuration(14, 0, 0, 0, 0), "P14D"},
		{"seconds", 45 * Second, "PT45S"},
		{"milliseconds", 250 * Millisecond, "PT0.250S"},
		{"negative", NewDuration(0, 0, -90, 0, 0), "-PT1H30M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.duration.String())
		})
	}
}

func TestDuration_StringRoundTrip(t *testing.T) {
	for _, d := range sampleDurations {
		parsed, err := ParseDuration(d.String())

		require.NoError(t, err, "parse %q", d.String())
		assert.Equal(t, d, parsed, "round trip of %q", d.String())
	}
}
