package utils

import (
	"math"
	"reflect"
	"strings"
)

// CleanHeader trims whitespace and removes ALL quotes from a CSV header name
func CleanHeader(h string) string {
	h = strings.TrimSpace(h)
	h = strings.TrimPrefix(h, "\ufeff") // byte order mark on the first header
	return strings.ReplaceAll(h, `"`, "")
}

// IsRemote reports whether a dataset location should be fetched over HTTP
func IsRemote(pathOrURL string) bool {
	return strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://")
}

// Numeric safely converts supported types to float64.
func Numeric(v interface{}) float64 {
	switch val := v.(type) {
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case float64:
		return val
	case float32:
		return float64(val)
	default:
		rv := reflect.ValueOf(v)
		if rv.IsValid() && rv.Kind() >= reflect.Int && rv.Kind() <= reflect.Float64 {
			return rv.Convert(reflect.TypeOf(float64(0))).Float()
		}
		return 0
	}
}

// PlainValue coerces a cell into something every JSON encoder accepts:
// NaN and infinities become nil, other numbers collapse to int or float64.
func PlainValue(v interface{}) interface{} {
	switch val := v.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil
		}
		return val
	case float32:
		return PlainValue(float64(val))
	case int, bool, string:
		return val
	case int64:
		return int(val)
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() >= reflect.Int && rv.Kind() <= reflect.Float64 {
			return PlainValue(Numeric(v))
		}
		return val
	}
}
