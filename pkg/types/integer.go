package types

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

func init() {
	typesMap[TYPE_INTEGER] = castInteger

	for _, name := range []string{"INT", "INTEGER", "BIGINT", "SMALLINT", "TINYINT", "INT2", "INT4", "INT8", "LONG"} {
		parsers[name] = TYPE_INTEGER
	}
}

func castInteger(value interface{}) (interface{}, error) {
	var (
		n  int64
		ok bool
	)

	switch v := value.(type) {
	case int:
		n, ok = fromInteger(v)
	case int8:
		n, ok = fromInteger(v)
	case int16:
		n, ok = fromInteger(v)
	case int32:
		n, ok = fromInteger(v)
	case int64:
		n, ok = v, true
	case uint:
		n, ok = fromInteger(v)
	case uint8:
		n, ok = fromInteger(v)
	case uint16:
		n, ok = fromInteger(v)
	case uint32:
		n, ok = fromInteger(v)
	case uint64:
		n, ok = fromInteger(v)
	case float32:
		n, ok = fromFloat(float64(v))
	case float64:
		n, ok = fromFloat(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			n, ok = i, true
		} else if f, err := v.Float64(); err == nil {
			n, ok = fromFloat(f)
		}
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		n, ok = i, err == nil
	}

	if !ok {
		return nil, invalid(TYPE_INTEGER, value)
	}
	return n, nil
}

// fromInteger converts v to int64, reporting false when it doesn't fit.
func fromInteger[T constraints.Integer](v T) (int64, bool) {
	n := int64(v)
	if T(n) != v || (v > 0) != (n > 0) {
		return 0, false
	}
	return n, true
}

func fromFloat(v float64) (int64, bool) {
	if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}
