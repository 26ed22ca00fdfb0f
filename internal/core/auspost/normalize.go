package auspost

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EnsureSequence normalizes the upstream's object-or-array polymorphism.
// The generated JSON collapses one-element lists into a bare object, so a
// single object becomes a one-element slice and an array is split into its
// elements unchanged.
func EnsureSequence(raw json.RawMessage) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("ensure sequence: empty value")
	}

	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("ensure sequence: %w", err)
		}
		return items, nil
	case '{':
		return []json.RawMessage{trimmed}, nil
	default:
		return nil, fmt.Errorf("ensure sequence: expected object or array")
	}
}

// ParsePostcode parses a postcode as a permissive numeric check: any
// integer of at least 1000 is accepted.
func ParsePostcode(value string) (int, error) {
	postcode, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("postcode %q is not numeric", value)
	}
	if postcode < 1000 {
		return 0, fmt.Errorf("postcode %d is out of range", postcode)
	}
	return postcode, nil
}

// timestampLayouts covers the ISO-ish formats the upstream emits, from
// full offset-aware timestamps down to bare calendar dates.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an upstream timestamp into UTC. Offset-aware
// values are converted; offset-naive values are interpreted as already UTC.
func ParseTimestamp(value string) (time.Time, error) {
	text := strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, text)
		if err != nil {
			continue
		}
		return t.UTC(), nil
	}
	return time.Time{}, &MalformedTimestampError{Value: value}
}

// To24Hour converts an upstream "HH:MM[:SS]" clock labeled with an AM/PM
// qualifier into a zero-padded 24-hour clock. The upstream encoding is
// inconsistent: PM entries sometimes already carry 13-23 hours, so PM
// values pass through unchanged and only the AM midnight case (hour 12)
// is rewritten to 0.
func To24Hour(clock string, meridiem string) (string, error) {
	parts := strings.Split(clock, ":")
	if len(parts) < 2 {
		return "", fmt.Errorf("clock %q is not HH:MM[:SS]", clock)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("clock %q has a non-numeric hour", clock)
	}

	if meridiem == "AM" && hour == 12 {
		hour = 0
	}

	parts[0] = fmt.Sprintf("%02d", hour)
	return strings.Join(parts, ":"), nil
}

// weekdayNames maps the upstream day codes, Monday=1 through Sunday=7.
var weekdayNames = map[int]string{
	1: "Monday",
	2: "Tuesday",
	3: "Wednesday",
	4: "Thursday",
	5: "Friday",
	6: "Saturday",
	7: "Sunday",
}

// WeekdayName maps a day code 1-7 to its weekday name.
func WeekdayName(dayCode int) (string, error) {
	name, ok := weekdayNames[dayCode]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownDayCode, dayCode)
	}
	return name, nil
}

// FlexString accepts either a JSON string or a bare number; the upstream
// mixes both for identifiers and postcodes.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*s = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		*s = FlexString(value)
		return nil
	}
	*s = FlexString(trimmed)
	return nil
}

// String returns the underlying value.
func (s FlexString) String() string {
	return string(s)
}
