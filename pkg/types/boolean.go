package types

import (
	"strconv"
	"strings"
)

func init() {
	typesMap[TYPE_BOOLEAN] = castBoolean

	for _, name := range []string{"BOOL", "BOOLEAN"} {
		parsers[name] = TYPE_BOOLEAN
	}
}

func castBoolean(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b, nil
		}
	default:
		if n, err := castInteger(v); err == nil {
			switch n.(int64) {
			case 0:
				return false, nil
			case 1:
				return true, nil
			}
		}
	}
	return nil, invalid(TYPE_BOOLEAN, value)
}
