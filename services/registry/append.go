package registry

import (
	"go-lakedb/pkg/manifest"
	"go-lakedb/pkg/types"
	"go-lakedb/util/logger"

	"github.com/pkg/errors"
)

// AppendRows writes rows as one new data file and registers it in the
// table's manifest. The file is written strictly before the manifest is
// persisted and is never deleted afterwards: a failure or crash in between
// leaves an unreferenced file, never a manifest entry without a file.
func (r *Registry) AppendRows(name string, columns []string, rows [][]interface{}) (*manifest.FileDescriptor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := r.table(name)
	if err != nil {
		return nil, err
	}

	if err := r.appendRowsValidate(t, columns, rows); err != nil {
		return nil, errors.Wrap(err, "validation error")
	}

	batch := make([]types.DataRow, len(rows))
	for i, values := range rows {
		row := make(types.DataRow, len(columns))
		for j, col := range columns {
			row[col] = values[j]
		}
		batch[i] = row
	}

	fd, err := r.writer.Write(name, t.Schema, t.Files, batch)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to write data file for table '%s'", name)
	}

	log := logger.Table(name).WithField("sequence", fd.Sequence)

	if err := r.commit(func(doc *manifest.Document) {
		dt := doc.Tables[name]
		dt.Files = append(dt.Files, fd)
	}); err != nil {
		log.WithError(err).WithField("path", fd.Path).Warn("catalog not persisted, data file kept")
		return nil, errors.Wrapf(err, "failed to register data file for table '%s'", name)
	}

	log.WithField("rows", len(rows)).Debug("rows appended")
	return fd.Clone(), nil
}
