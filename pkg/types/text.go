package types

import (
	"encoding/json"
	"strconv"
)

func init() {
	typesMap[TYPE_TEXT] = castText
	typesMap[TYPE_UNKNOWN] = castText

	for _, name := range []string{"TEXT", "STRING", "VARCHAR", "CHAR", "NVARCHAR", "NCHAR", "CLOB"} {
		parsers[name] = TYPE_TEXT
	}
}

// castText accepts any scalar and stores its textual form.
func castText(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	}

	if n, err := castInteger(value); err == nil {
		return strconv.FormatInt(n.(int64), 10), nil
	}
	return nil, invalid(TYPE_TEXT, value)
}
