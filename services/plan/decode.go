package plan

import (
	"bytes"
	"encoding/json"
	"strings"

	"go-lakedb/pkg/customerrors"
	"go-lakedb/pkg/types"

	"github.com/pkg/errors"
)

type document struct {
	Op           string            `json:"op"`
	Table        string            `json:"table"`
	Columns      []json.RawMessage `json:"columns"`
	Rows         [][]interface{}   `json:"rows"`
	AllowPartial bool              `json:"allow_partial"`
}

// Decode parses one JSON plan document, e.g.
//
//	{"op": "CREATE", "table": "orders", "columns": [["id", "INT"], {"name": "name", "type": "TEXT"}]}
//	{"op": "INSERT", "table": "orders", "columns": ["id", "name"], "rows": [[1, "a"], [2, "b"]]}
//	{"op": "SELECT", "table": "orders", "columns": ["*"]}
//
// Numbers are kept as json.Number and cast to the column type on insert.
func Decode(data []byte) (Plan, error) {
	dec := json.NewDecoder(bytes.NewReader(bytes.TrimSpace(data)))
	dec.UseNumber()
	dec.DisallowUnknownFields()

	doc := &document{}
	if err := dec.Decode(doc); err != nil {
		return nil, errors.Wrap(customerrors.ErrInvalidPlan, err.Error())
	}

	switch Kind(strings.ToUpper(doc.Op)) {
	case CREATE:
		if doc.Rows != nil {
			return nil, errors.Wrap(customerrors.ErrInvalidPlan, "CREATE takes no rows")
		}
		defs, err := decodeColumnDefs(doc.Columns)
		if err != nil {
			return nil, err
		}
		return &Create{Table: doc.Table, Columns: defs}, nil
	case INSERT:
		names, err := decodeColumnNames(doc.Columns)
		if err != nil {
			return nil, err
		}
		return &Insert{Table: doc.Table, Columns: names, Rows: doc.Rows}, nil
	case SELECT:
		if doc.Rows != nil {
			return nil, errors.Wrap(customerrors.ErrInvalidPlan, "SELECT takes no rows")
		}
		names, err := decodeColumnNames(doc.Columns)
		if err != nil {
			return nil, err
		}
		return &Select{Table: doc.Table, Columns: names, AllowPartial: doc.AllowPartial}, nil
	default:
		return nil, errors.Wrapf(customerrors.ErrUnsupportedOperation, "'%s'", doc.Op)
	}
}

// decodeColumnDefs accepts {"name", "type"} objects, [name, type] pairs and
// bare names. A bare name gets the UNKNOWN type.
func decodeColumnDefs(raw []json.RawMessage) ([]ColumnDef, error) {
	defs := make([]ColumnDef, len(raw))
	for i, msg := range raw {
		var err error
		switch msg[0] {
		case '{':
			err = json.Unmarshal(msg, &defs[i])
		case '[':
			var pair []string
			if err = json.Unmarshal(msg, &pair); err == nil {
				if len(pair) != 2 {
					err = errors.Errorf("expected [name, type], got %d elements", len(pair))
				} else {
					defs[i] = ColumnDef{Name: pair[0], Type: pair[1]}
				}
			}
		case '"':
			defs[i].Type = string(types.TYPE_UNKNOWN)
			err = json.Unmarshal(msg, &defs[i].Name)
		default:
			err = errors.New("expected object, pair or name")
		}

		if err != nil {
			return nil, errors.Wrapf(customerrors.ErrInvalidPlan, "column %d: %v", i, err)
		}
	}
	return defs, nil
}

func decodeColumnNames(raw []json.RawMessage) ([]string, error) {
	names := make([]string, len(raw))
	for i, msg := range raw {
		if err := json.Unmarshal(msg, &names[i]); err != nil {
			return nil, errors.Wrapf(customerrors.ErrInvalidPlan, "column %d: %v", i, err)
		}
	}
	return names, nil
}
