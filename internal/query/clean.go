package query

import (
	"math"
	"strconv"
	"strings"
)

// Clean normalizes a raw cell to a finite float or nil.
// Missing, unparseable and non-finite values all collapse to nil
// so the transport layer never serializes Inf or NaN. Partial data
// is the common case in the scorecard datasets, not an anomaly,
// so none of these conditions is an error.
func Clean(cell any) *float64 {
	switch cell := cell.(type) {
	case nil:
		return nil
	case float64:
		return finite(cell)
	case float32:
		return finite(float64(cell))
	case int:
		return finite(float64(cell))
	case int64:
		return finite(float64(cell))
	case string:
		trimmed := strings.TrimSpace(cell)
		if trimmed == "" {
			return nil
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil
		}
		return finite(f)
	}
	return nil
}

func finite(f float64) *float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	return &f
}
