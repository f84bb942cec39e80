package types

import (
	"encoding/json"
	"strings"

	"go-lakedb/pkg/customerrors"

	"github.com/pkg/errors"
)

// TypeCode names a primitive column type. The string form is what gets
// persisted in the catalog.
type TypeCode string

const (
	TYPE_INTEGER TypeCode = "INT"
	TYPE_FLOAT   TypeCode = "FLOAT"
	TYPE_BOOLEAN TypeCode = "BOOL"
	TYPE_TEXT    TypeCode = "TEXT"
	TYPE_UNKNOWN TypeCode = "UNKNOWN"
)

// caster converts a loosely typed input value into the canonical Go
// representation of one type: int64, float64, bool or string.
type caster func(value interface{}) (interface{}, error)

var typesMap = map[TypeCode]caster{}

// parsers maps declared SQL type names to their TypeCode.
var parsers = map[string]TypeCode{}

// DataRow is one row keyed by column name.
type DataRow map[string]interface{}

// Parse normalizes a declared type name such as "varchar(255)" or "BIGINT".
// Names that match no known type resolve to TYPE_UNKNOWN, which is stored
// as text.
func Parse(name string) TypeCode {
	key := strings.ToUpper(strings.TrimSpace(name))
	if i := strings.IndexByte(key, '('); i >= 0 {
		key = strings.TrimSpace(key[:i])
	}

	if code, ok := parsers[key]; ok {
		return code
	}
	return TYPE_UNKNOWN
}

func (c TypeCode) Valid() bool {
	_, ok := typesMap[c]
	return ok
}

func (c *TypeCode) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*c = Parse(name)
	return nil
}

// Cast converts value to the canonical representation of code. A nil value
// is NULL and is accepted by every type.
func Cast(code TypeCode, value interface{}) (interface{}, error) {
	if value == nil {
		return nil, nil
	}

	cast, ok := typesMap[code]
	if !ok {
		return nil, errors.Wrapf(customerrors.ErrInvalidValue, "unknown type '%s'", code)
	}
	return cast(value)
}

func invalid(code TypeCode, value interface{}) error {
	return errors.Wrapf(customerrors.ErrInvalidValue, "can't cast %T '%v' to %s", value, value, code)
}
