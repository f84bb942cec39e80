package plan

import (
	"encoding/json"
	"testing"

	"go-lakedb/pkg/column"
	"go-lakedb/pkg/customerrors"
	"go-lakedb/pkg/types"

	"github.com/stretchr/testify/require"
)

func TestDecodeCreate(t *testing.T) {
	p, err := Decode([]byte(`{
		"op": "create",
		"table": "orders",
		"columns": [["id", "BIGINT"], {"name": "name", "type": "VARCHAR(255)"}, "note"]
	}`))
	require.NoError(t, err)
	require.Equal(t, CREATE, p.Kind())
	require.Equal(t, "orders", p.TableName())

	create, ok := p.(*Create)
	require.True(t, ok)
	require.Equal(t, []ColumnDef{
		{Name: "id", Type: "BIGINT"},
		{Name: "name", Type: "VARCHAR(255)"},
		{Name: "note", Type: "UNKNOWN"},
	}, create.Columns)

	require.Equal(t, column.Schema{
		column.New("id", types.TYPE_INTEGER),
		column.New("name", types.TYPE_TEXT),
		column.New("note", types.TYPE_UNKNOWN),
	}, create.Schema())
}

func TestDecodeInsert(t *testing.T) {
	p, err := Decode([]byte(`{"op": "INSERT", "table": "orders", "columns": ["id", "name"], "rows": [[1, "a"], [2.5, null]]}`))
	require.NoError(t, err)

	insert, ok := p.(*Insert)
	require.True(t, ok)
	require.Equal(t, []string{"id", "name"}, insert.Columns)
	require.Equal(t, [][]interface{}{
		{json.Number("1"), "a"},
		{json.Number("2.5"), nil},
	}, insert.Rows)
}

func TestDecodeSelect(t *testing.T) {
	p, err := Decode([]byte(`{"op": "SELECT", "table": "orders", "columns": ["*"], "allow_partial": true}`))
	require.NoError(t, err)
	require.Equal(t, &Select{Table: "orders", Columns: []string{"*"}, AllowPartial: true}, p)

	p, err = Decode([]byte(`{"op": "SELECT", "table": "orders"}`))
	require.NoError(t, err)
	require.Empty(t, p.(*Select).Columns)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte(`{"op": "DROP", "table": "orders"}`))
	require.ErrorIs(t, err, customerrors.ErrUnsupportedOperation)

	invalid := []string{
		`{"op": "SELECT", "table": `,
		`{"op": "SELECT", "table": "orders", "where": "id = 1"}`,
		`{"op": "SELECT", "table": "orders", "rows": [[1]]}`,
		`{"op": "CREATE", "table": "orders", "columns": [["id"]]}`,
		`{"op": "CREATE", "table": "orders", "columns": [42]}`,
		`{"op": "INSERT", "table": "orders", "columns": [{"name": "id"}], "rows": [[1]]}`,
	}
	for _, doc := range invalid {
		_, err := Decode([]byte(doc))
		require.ErrorIs(t, err, customerrors.ErrInvalidPlan, doc)
	}
}
