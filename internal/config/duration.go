package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var errNegativeDuration = errors.New("must be >= 0")

// DurationError reports a config key whose value is not a usable duration.
type DurationError struct {
	Key   string
	Value string
	Err   error
}

func (e *DurationError) Error() string {
	return fmt.Sprintf("%s: invalid duration %q: %v", e.Key, e.Value, e.Err)
}

func (e *DurationError) Unwrap() error { return e.Err }

// ParseDurationField parses the value of config key. Both Go duration
// strings ("1m30s", "500ms") and bare numbers of seconds ("20", "2.5") are
// accepted. Empty means zero.
func ParseDurationField(key, value string) (time.Duration, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, nil
	}
	d, err := parseSecondsOrDuration(s)
	if err == nil && d < 0 {
		err = errNegativeDuration
	}
	if err != nil {
		return 0, &DurationError{Key: key, Value: value, Err: err}
	}
	return d, nil
}

// ParseDurationOrDefault is ParseDurationField with def substituted for an
// empty or zero value.
func ParseDurationOrDefault(key, value string, def time.Duration) (time.Duration, error) {
	if d, err := ParseDurationField(key, value); err != nil || d > 0 {
		return d, err
	}
	return def, nil
}

func parseSecondsOrDuration(s string) (time.Duration, error) {
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return time.ParseDuration(s)
	}
	if math.IsNaN(secs) || math.IsInf(secs, 0) || math.Abs(secs) > math.MaxInt64/float64(time.Second) {
		return 0, fmt.Errorf("out of range")
	}
	return time.Duration(secs * float64(time.Second)), nil
}
