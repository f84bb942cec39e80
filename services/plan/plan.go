// Package plan holds the normalized operation descriptors handed to the
// executor. The set of plans is closed: only types in this package
// implement Plan.
package plan

import (
	"go-lakedb/pkg/column"
	"go-lakedb/pkg/types"
)

type Kind string

const (
	CREATE Kind = "CREATE"
	INSERT Kind = "INSERT"
	SELECT Kind = "SELECT"
)

type Plan interface {
	Kind() Kind
	TableName() string

	plan()
}

// ColumnDef is a column as written in a CREATE statement. Type is the raw
// type name, normalized by types.Parse.
type ColumnDef struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type Create struct {
	Table   string
	Columns []ColumnDef
}

func (p *Create) Kind() Kind        { return CREATE }
func (p *Create) TableName() string { return p.Table }
func (p *Create) plan()             {}

func (p *Create) Schema() column.Schema {
	schema := make(column.Schema, len(p.Columns))
	for i, def := range p.Columns {
		schema[i] = column.New(def.Name, types.Parse(def.Type))
	}
	return schema
}

// Insert carries one row per entry of Rows, each holding a value for every
// name in Columns, in that order.
type Insert struct {
	Table   string
	Columns []string
	Rows    [][]interface{}
}

func (p *Insert) Kind() Kind        { return INSERT }
func (p *Insert) TableName() string { return p.Table }
func (p *Insert) plan()             {}

// Select projects Columns out of every row of Table. An empty list or
// column.Wildcard selects all columns.
type Select struct {
	Table        string
	Columns      []string
	AllowPartial bool
}

func (p *Select) Kind() Kind        { return SELECT }
func (p *Select) TableName() string { return p.Table }
func (p *Select) plan()             {}
