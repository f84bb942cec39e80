package registry

import (
	"go-lakedb/pkg/customerrors"
	"go-lakedb/pkg/manifest"
	"go-lakedb/util/helpers"

	"github.com/pkg/errors"
)

func (r *Registry) appendRowsValidate(t *manifest.Table, columns []string, rows [][]interface{}) error {
	if len(rows) == 0 {
		return errors.Wrapf(customerrors.ErrInsertArityMismatch, "table '%s': no rows to insert", t.Name)
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return errors.Wrapf(
				customerrors.ErrInsertArityMismatch,
				"table '%s': count of values on row %d is %d, must be %d",
				t.Name, i, len(row), len(columns),
			)
		}
	}

	if dups := helpers.Duplicates(columns); len(dups) > 0 {
		return errors.Wrapf(customerrors.ErrInsertArityMismatch, "table '%s': columns listed twice %v", t.Name, dups)
	}

	missing, extra := helpers.Diff(t.Schema.Names(), columns)
	if len(missing) > 0 || len(extra) > 0 {
		return &customerrors.SchemaMismatchError{
			Table:   t.Name,
			Row:     -1,
			Missing: missing,
			Extra:   extra,
			Kind:    customerrors.ErrInsertArityMismatch,
		}
	}
	return nil
}
