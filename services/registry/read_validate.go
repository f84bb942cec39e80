package registry

import (
	"go-lakedb/pkg/column"
	"go-lakedb/pkg/manifest"
)

// readTableValidate resolves the projection before any data file is touched.
func (r *Registry) readTableValidate(t *manifest.Table, columns []string) (column.Schema, error) {
	return t.Schema.Project(t.Name, columns)
}
