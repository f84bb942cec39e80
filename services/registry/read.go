package registry

import (
	"go-lakedb/pkg/datafile"
	"go-lakedb/util/logger"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ReadTable returns the rows of every data file in the table's manifest,
// in append order, projected onto columns. An empty column list or
// column.Wildcard selects all columns.
func (r *Registry) ReadTable(name string, columns []string, opts datafile.ReadOptions) (*datafile.RowSet, error) {
	r.mu.RLock()
	t, err := r.table(name)
	if err == nil {
		t = t.Clone()
	}
	r.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	projection, err := r.readTableValidate(t, columns)
	if err != nil {
		return nil, errors.Wrap(err, "validation error")
	}

	rs, err := r.reader.Read(name, t.Schema, t.Files, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read table '%s'", name)
	}

	positions := make([]int, len(projection))
	for i, col := range projection {
		positions[i] = t.Schema.Index(col.Name)
	}

	rows := make([][]interface{}, len(rs.Rows))
	for i, full := range rs.Rows {
		row := make([]interface{}, len(positions))
		for j, pos := range positions {
			row[j] = full[pos]
		}
		rows[i] = row
	}

	logger.Table(name).WithFields(logrus.Fields{
		"files":   len(t.Files),
		"rows":    len(rows),
		"missing": len(rs.Missing),
	}).Debug("table read")

	return &datafile.RowSet{
		Columns: projection,
		Rows:    rows,
		Missing: rs.Missing,
	}, nil
}
