package summary

import (
	"encoding/json"
	"strconv"
)

// Percentage is an attendance percentage or the not-applicable sentinel that
// a zero-meeting scope produces. The sentinel is a distinct variant, never 0,
// NaN, or nil, so render and sort sites are forced to handle it.
type Percentage struct {
	value float64
	valid bool
}

// Numeric wraps a computed percentage value.
func Numeric(v float64) Percentage {
	return Percentage{value: v, valid: true}
}

// NotApplicable is the sentinel for a scope with no meetings.
func NotApplicable() Percentage {
	return Percentage{}
}

// ComputePercentage derives attended/total as a percentage in [0, 100].
// A zero total yields the not-applicable sentinel; division by zero is a
// defined outcome here, not an error.
func ComputePercentage(attended, total int) Percentage {
	if total <= 0 {
		return NotApplicable()
	}
	return Numeric(float64(attended) / float64(total) * 100)
}

// Value returns the numeric percentage and whether one exists.
func (p Percentage) Value() (float64, bool) {
	return p.value, p.valid
}

// IsApplicable reports whether the percentage is numeric.
func (p Percentage) IsApplicable() bool {
	return p.valid
}

// rank is the ordering key: the sentinel sorts as 0, display is unaffected.
func (p Percentage) rank() float64 {
	if !p.valid {
		return 0
	}
	return p.value
}

// String renders to one decimal place, the precision the tables and the CSV
// report use. The sentinel renders as the literal "N/A".
func (p Percentage) String() string {
	if !p.valid {
		return "N/A"
	}
	return strconv.FormatFloat(p.value, 'f', 1, 64)
}

// MarshalJSON emits the raw (unrounded) number, or the string "N/A".
func (p Percentage) MarshalJSON() ([]byte, error) {
	if !p.valid {
		return json.Marshal("N/A")
	}
	return json.Marshal(p.value)
}

// UnmarshalJSON accepts either a number or the "N/A" string, matching what
// MarshalJSON and the original API produce.
func (p *Percentage) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*p = Numeric(num)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "N/A" || s == "" {
		*p = NotApplicable()
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*p = Numeric(v)
	return nil
}
