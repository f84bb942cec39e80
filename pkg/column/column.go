package column

import (
	"go-lakedb/pkg/customerrors"
	"go-lakedb/pkg/types"
	"go-lakedb/util/helpers"

	"github.com/pkg/errors"
)

// Wildcard is the universal projection marker.
const Wildcard = "*"

type Column struct {
	Name string         `json:"name"`
	Typ  types.TypeCode `json:"type"`
}

func New(name string, typ types.TypeCode) *Column {
	return &Column{Name: name, Typ: typ}
}

// Schema is an ordered column list. The order is the projection order of
// reads and the column order recorded in data files.
type Schema []*Column

func (s Schema) Validate() error {
	if len(s) == 0 {
		return customerrors.ErrEmptySchema
	}

	for i, col := range s {
		if col == nil || !helpers.ValidName(col.Name) || col.Name == Wildcard {
			return errors.Wrapf(customerrors.ErrInvalidName, "column #%d", i)
		}
		if !col.Typ.Valid() {
			return errors.Wrapf(customerrors.ErrInvalidName, "column '%s' has unknown type '%s'", col.Name, col.Typ)
		}
	}

	// a schema naming a column twice is as degenerate as an empty one
	if dups := helpers.Duplicates(s.Names()); len(dups) > 0 {
		return customerrors.WithKind(customerrors.ErrEmptySchema, customerrors.ErrDuplicateColumn, "columns %v", dups)
	}
	return nil
}

func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, col := range s {
		names[i] = col.Name
	}
	return names
}

func (s Schema) Map() map[string]*Column {
	m := make(map[string]*Column, len(s))
	for _, col := range s {
		m[col.Name] = col
	}
	return m
}

// Index returns the position of the named column, or -1.
func (s Schema) Index(name string) int {
	for i, col := range s {
		if col.Name == name {
			return i
		}
	}
	return -1
}

func (s Schema) Clone() Schema {
	cp := make(Schema, len(s))
	for i, col := range s {
		c := *col
		cp[i] = &c
	}
	return cp
}

func (s Schema) Equal(other Schema) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if *s[i] != *other[i] {
			return false
		}
	}
	return true
}

// Project resolves requested column names against the schema. Every
// Wildcard expands to the full schema in place. All unknown names are
// reported together.
func (s Schema) Project(table string, requested []string) (Schema, error) {
	if len(requested) == 0 {
		return s.Clone(), nil
	}

	columns := s.Map()
	projected := make(Schema, 0, len(requested))
	var unknown []string

	for _, name := range requested {
		if name == Wildcard {
			projected = append(projected, s.Clone()...)
			continue
		}

		col, ok := columns[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		c := *col
		projected = append(projected, &c)
	}

	if len(unknown) > 0 {
		return nil, &customerrors.ColumnNotFoundError{Table: table, Columns: unknown}
	}
	return projected, nil
}
