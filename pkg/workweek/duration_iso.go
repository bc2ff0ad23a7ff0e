package workweek

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseDuration parses an ISO 8601 duration into a Duration.
// Calendar units are used, not business units: 1 day = 24 hours, 1 week = 7 days.
// Supported formats:
//   - PT8H -> 8 hours
//   - PT1H30M -> 90 minutes
//   - P1DT2H -> 26 hours
//   - P2W -> 14 days
//   - PT0.250S -> 250 milliseconds
//   - -PT2H -> minus 2 hours
func ParseDuration(s string) (Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty duration", ErrInvalidDuration)
	}

	input := s
	negative := false
	if s[0] == '-' {
		negative = true
		s = s[1:]
	} else if s[0] == '+' {
		s = s[1:]
	}

	if s == "" || s[0] != 'P' {
		return 0, fmt.Errorf("%w: %q must start with P", ErrInvalidDuration, input)
	}
	s = s[1:]

	datePart := s
	timePart := ""
	hasTime := false
	if idx := strings.IndexByte(s, 'T'); idx >= 0 {
		datePart = s[:idx]
		timePart = s[idx+1:]
		hasTime = true
	}

	if datePart == "" && timePart == "" {
		return 0, fmt.Errorf("%w: %q has no components", ErrInvalidDuration, input)
	}
	if hasTime && timePart == "" {
		return 0, fmt.Errorf("%w: %q has an empty time part", ErrInvalidDuration, input)
	}

	var total Duration

	rest, err := consumeUnits(datePart, []unit{{'W', msPerWeek}, {'D', msPerDay}}, &total)
	if err != nil || rest != "" {
		return 0, fmt.Errorf("%w: bad date part in %q", ErrInvalidDuration, input)
	}

	if hasTime {
		rest, err = consumeUnits(timePart, []unit{{'H', msPerHour}, {'M', msPerMinute}}, &total)
		if err != nil {
			return 0, fmt.Errorf("%w: bad time part in %q", ErrInvalidDuration, input)
		}
		if rest != "" {
			ms, err := parseSeconds(rest)
			if err != nil || int64(total) > math.MaxInt64-ms {
				return 0, fmt.Errorf("%w: bad seconds in %q", ErrInvalidDuration, input)
			}
			total += Duration(ms)
		}
	}

	if negative {
		total = -total
	}
	return total, nil
}

type unit struct {
	designator byte
	ms         int64
}

// consumeUnits reads integer components in the given order and returns what is left
func consumeUnits(s string, units []unit, total *Duration) (string, error) {
	for _, u := range units {
		idx := strings.IndexByte(s, u.designator)
		if idx < 0 {
			continue
		}
		n, err := strconv.ParseInt(s[:idx], 10, 64)
		if err != nil || n < 0 {
			return s, fmt.Errorf("invalid %c component %q", u.designator, s[:idx])
		}
		if n > (math.MaxInt64-int64(*total))/u.ms {
			return s, fmt.Errorf("%c component %d out of range", u.designator, n)
		}
		*total += Duration(n * u.ms)
		s = s[idx+1:]
	}
	return s, nil
}

// parseSeconds parses "n[.fff]S" into milliseconds
func parseSeconds(s string) (int64, error) {
	if !strings.HasSuffix(s, "S") {
		return 0, fmt.Errorf("missing S designator")
	}
	s = strings.TrimSuffix(s, "S")

	whole, frac, hasFrac := strings.Cut(s, ".")
	secs, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || secs < 0 || secs > (math.MaxInt64-999)/msPerSecond {
		return 0, fmt.Errorf("invalid seconds %q", whole)
	}

	ms := secs * msPerSecond
	if hasFrac {
		if frac == "" || len(frac) > 3 {
			return 0, fmt.Errorf("invalid fraction %q", frac)
		}
		// Right-pad to milliseconds: ".5" is 500ms
		frac += strings.Repeat("0", 3-len(frac))
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil || f < 0 {
			return 0, fmt.Errorf("invalid fraction %q", frac)
		}
		ms += f
	}
	return ms, nil
}

// String formats the duration as ISO 8601.
// Examples: 8h -> PT8H, 26h -> P1DT2H, 90m -> PT1H30M, 0 -> PT0S
func (d Duration) String() string {
	if d == 0 {
		return "PT0S"
	}

	var b strings.Builder
	if d < 0 {
		b.WriteByte('-')
	}
	abs := d.Abs()
	b.WriteByte('P')

	if days := abs.Days(); days > 0 {
		fmt.Fprintf(&b, "%dD", days)
	}

	hours, mins, secs, millis := abs.Hours(), abs.Minutes(), abs.Seconds(), abs.Millis()
	if hours == 0 && mins == 0 && secs == 0 && millis == 0 {
		return b.String()
	}

	b.WriteByte('T')
	if hours > 0 {
		fmt.Fprintf(&b, "%dH", hours)
	}
	if mins > 0 {
		fmt.Fprintf(&b, "%dM", mins)
	}
	if millis > 0 {
		fmt.Fprintf(&b, "%d.%03dS", secs, millis)
	} else if secs > 0 {
		fmt.Fprintf(&b, "%dS", secs)
	}
	return b.String()
}
