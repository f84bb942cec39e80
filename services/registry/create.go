package registry

import (
	"go-lakedb/pkg/column"
	"go-lakedb/pkg/customerrors"
	"go-lakedb/pkg/manifest"
	"go-lakedb/util/helpers"
	"go-lakedb/util/logger"

	"github.com/pkg/errors"
)

// CreateTable registers a table with an empty manifest and provisions its
// data directory. The schema is fixed from here on.
func (r *Registry) CreateTable(name string, schema column.Schema) (*manifest.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.createTableValidate(name, schema); err != nil {
		return nil, errors.Wrap(err, "validation error")
	}

	// An unreferenced directory is harmless; a catalog entry without one is not.
	if err := helpers.CreateDir(r.tablePath(name)); err != nil {
		return nil, customerrors.WithKind(customerrors.ErrIOFailure, err, "create table directory '%s'", name)
	}

	t := &manifest.Table{
		Name:   name,
		Schema: schema.Clone(),
		Files:  manifest.Manifest{},
	}

	if err := r.commit(func(doc *manifest.Document) {
		doc.Tables[name] = t
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to create table '%s'", name)
	}

	logger.Table(name).WithField("columns", schema.Names()).Info("table created")
	return t.Clone(), nil
}
