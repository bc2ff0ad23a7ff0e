package dateutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestNextDay(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "Mid day",
			input:    time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC),
			expected: time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Month boundary",
			input:    time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Year boundary",
			input:    time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			expected: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NextDay(tt.input)

			if !result.Equal(tt.expected) {
				t.Errorf("NextDay(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "Wednesday returns Monday",
			input:    time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), // Wednesday
			expected: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),  // Monday
		},
		{
			name:     "Monday returns same Monday",
			input:    time.Date(2025, 1, 13, 12, 0, 0, 0, time.UTC), // Monday
			expected: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Sunday returns previous Monday",
			input:    time.Date(2025, 1, 19, 12, 0, 0, 0, time.UTC), // Sunday
			expected: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),  // Previous Monday
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StartOfWeek(tt.input)

			if !result.Equal(tt.expected) {
				t.Errorf("StartOfWeek(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"),
					result.Format("2006-01-02 Mon"),
					tt.expected.Format("2006-01-02 Mon"))
			}
		})
	}
}

func TestIsSameDay(t *testing.T) {
	tests := []struct {
		name  string
		date1 time.Time
		date2 time.Time
		want  bool
	}{
		{
			"Same date different time",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 15, 20, 0, 0, 0, time.UTC),
			true,
		},
		{
			"Different date",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsSameDay(tt.date1, tt.date2)

			if result != tt.want {
				t.Errorf("IsSameDay(%v, %v) = %v, want %v",
					tt.date1, tt.date2, result, tt.want)
			}
		})
	}
}

func TestFormatISO8601(t *testing.T) {
	input := time.Date(2025, 1, 15, 10, 30, 45, 0, time.UTC)
	result := FormatISO8601(input)

	expected := "2025-01-15T10:30:45.000+0000"
	if result != expected {
		t.Errorf("FormatISO8601(%v) = %v, want %v", input, result, expected)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			"ISO format YYYY-MM-DD",
			"2025-01-15",
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"Russian format DD.MM.YYYY",
			"15.01.2025",
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"Garbage",
			"not a date",
			time.Time{},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !result.Equal(tt.want) {
				t.Errorf("ParseDate(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestParseDateTime(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			"Date and minutes",
			"2025-01-13T09:30",
			time.Date(2025, 1, 13, 9, 30, 0, 0, msk),
			false,
		},
		{
			"Space separated",
			"2025-01-13 16:00:05",
			time.Date(2025, 1, 13, 16, 0, 5, 0, msk),
			false,
		},
		{
			"Milliseconds",
			"2025-01-13T16:00:05.250",
			time.Date(2025, 1, 13, 16, 0, 5, 250000000, msk),
			false,
		},
		{
			"RFC3339 keeps its offset",
			"2025-01-13T09:00:00Z",
			time.Date(2025, 1, 13, 9, 0, 0, 0, time.UTC),
			false,
		},
		{
			"Plain date is midnight",
			"2025-01-13",
			time.Date(2025, 1, 13, 0, 0, 0, 0, msk),
			false,
		},
		{
			"Garbage",
			"tomorrow",
			time.Time{},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDateTime(tt.input, msk)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDateTime(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !result.Equal(tt.want) {
				t.Errorf("ParseDateTime(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}
