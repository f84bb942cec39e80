package column

import (
	"encoding/json"
	"testing"

	"go-lakedb/pkg/customerrors"
	"go-lakedb/pkg/types"

	"github.com/stretchr/testify/require"
)

func ordersSchema() Schema {
	return Schema{
		New("id", types.TYPE_INTEGER),
		New("name", types.TYPE_TEXT),
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, ordersSchema().Validate())

	require.ErrorIs(t, Schema{}.Validate(), customerrors.ErrEmptySchema)
	require.ErrorIs(t, Schema(nil).Validate(), customerrors.ErrEmptySchema)

	dup := append(ordersSchema(), New("id", types.TYPE_TEXT))
	err := dup.Validate()
	require.ErrorIs(t, err, customerrors.ErrDuplicateColumn)
	require.ErrorIs(t, err, customerrors.ErrEmptySchema)
	require.Contains(t, err.Error(), "id")

	require.ErrorIs(t, Schema{New("", types.TYPE_TEXT)}.Validate(), customerrors.ErrInvalidName)
	require.ErrorIs(t, Schema{New("*", types.TYPE_TEXT)}.Validate(), customerrors.ErrInvalidName)
	require.ErrorIs(t, Schema{New("a", types.TypeCode("NOPE"))}.Validate(), customerrors.ErrInvalidName)
}

func TestProject(t *testing.T) {
	s := ordersSchema()

	all, err := s.Project("orders", []string{Wildcard})
	require.NoError(t, err)
	require.True(t, all.Equal(s))

	all, err = s.Project("orders", nil)
	require.NoError(t, err)
	require.True(t, all.Equal(s))

	p, err := s.Project("orders", []string{"name", "id", "name"})
	require.NoError(t, err)
	require.Equal(t, []string{"name", "id", "name"}, p.Names())

	_, err = s.Project("orders", []string{"id", "price", "qty"})
	require.ErrorIs(t, err, customerrors.ErrColumnNotFound)

	var cnf *customerrors.ColumnNotFoundError
	require.ErrorAs(t, err, &cnf)
	require.Equal(t, []string{"price", "qty"}, cnf.Columns)
	require.Equal(t, "orders", cnf.Table)
}

func TestCloneIsDeep(t *testing.T) {
	s := ordersSchema()
	cp := s.Clone()
	cp[0].Name = "changed"
	require.Equal(t, "id", s[0].Name)
	require.False(t, s.Equal(cp))
}

func TestJSON(t *testing.T) {
	blob, err := json.Marshal(ordersSchema())
	require.NoError(t, err)
	require.JSONEq(t, `[{"name":"id","type":"INT"},{"name":"name","type":"TEXT"}]`, string(blob))

	var s Schema
	require.NoError(t, json.Unmarshal(blob, &s))
	require.True(t, s.Equal(ordersSchema()))
	require.Equal(t, 1, s.Index("name"))
	require.Equal(t, -1, s.Index("nope"))
}
