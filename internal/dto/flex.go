package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// LocalTimeLayout renders display-timezone times without an offset, which
// browsers read as local time.
const LocalTimeLayout = "2006-01-02T15:04:05.000"

// Number accepts a JSON number or a numeric string. Anything unparsable,
// NaN and infinities decode to zero.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*n = 0
		return nil
	}
	*n = Number(f)
	return nil
}

// first returns the first non-zero value, mirroring `a || b` on the client.
func first(values ...*Number) float64 {
	for _, v := range values {
		if v != nil && *v != 0 {
			return float64(*v)
		}
	}
	return 0
}

func firstString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Goals renders an unreported score as null.
func Goals(g int) *int {
	if g < 0 {
		return nil
	}
	return &g
}

func LocalTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(LocalTimeLayout)
}

var _ json.Unmarshaler = (*Number)(nil)
