package registry

import (
	"go-lakedb/pkg/column"
	"go-lakedb/pkg/customerrors"
	"go-lakedb/util/helpers"

	"github.com/pkg/errors"
)

func (r *Registry) createTableValidate(name string, schema column.Schema) error {
	if !helpers.ValidName(name) {
		return errors.Wrapf(customerrors.ErrInvalidName, "table '%s'", name)
	}

	if err := schema.Validate(); err != nil {
		return errors.Wrapf(err, "table '%s'", name)
	}

	if _, ok := r.doc.Table(name); ok {
		return errors.Wrapf(customerrors.ErrTableAlreadyExists, "'%s'", name)
	}
	return nil
}
