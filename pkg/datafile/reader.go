package datafile

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"go-lakedb/pkg/column"
	"go-lakedb/pkg/customerrors"
	"go-lakedb/pkg/manifest"
	"go-lakedb/util/logger"

	"github.com/parquet-go/parquet-go"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const readBatchSize = 128

// RowSet is a materialized read result. Every row holds one value per
// entry of Columns, in that order.
type RowSet struct {
	Columns column.Schema
	Rows    [][]interface{}

	// Missing lists the files skipped under a partial read.
	Missing manifest.Manifest
}

type ReadOptions struct {
	// AllowPartial skips unreadable data files instead of failing the whole
	// read. Skipped files are reported in RowSet.Missing.
	AllowPartial bool
}

type Reader struct {
	root        string
	parallelism int
}

func NewReader(root string, parallelism int) *Reader {
	if parallelism < 1 {
		parallelism = 1
	}
	return &Reader{root: root, parallelism: parallelism}
}

// Read loads every file of the manifest and concatenates their rows in
// manifest order. Rows follow schema column order.
func (r *Reader) Read(
	table string,
	schema column.Schema,
	files manifest.Manifest,
	opts ReadOptions,
) (*RowSet, error) {
	if len(files) == 0 {
		return nil, errors.Wrapf(customerrors.ErrTableEmpty, "table '%s'", table)
	}

	parts := make([][][]interface{}, len(files))
	missing := make([]bool, len(files))

	eg := &errgroup.Group{}
	eg.SetLimit(r.parallelism)
	for i, fd := range files {
		i, fd := i, fd
		eg.Go(func() error {
			rows, err := r.readFile(table, schema, fd)
			if err != nil {
				if opts.AllowPartial && errors.Is(err, customerrors.ErrMissingDataFile) {
					logger.Table(table).WithError(err).Warn("skipping unreadable data file")
					missing[i] = true
					return nil
				}
				return err
			}
			parts[i] = rows
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}

	rs := &RowSet{
		Columns: schema.Clone(),
		Rows:    make([][]interface{}, 0, total),
	}
	for i, p := range parts {
		if missing[i] {
			rs.Missing = append(rs.Missing, files[i].Clone())
			continue
		}
		rs.Rows = append(rs.Rows, p...)
	}
	return rs, nil
}

func (r *Reader) readFile(table string, schema column.Schema, fd *manifest.FileDescriptor) ([][]interface{}, error) {
	path := filepath.Join(r.root, fd.Path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, customerrors.WithKind(
			customerrors.ErrMissingDataFile, err,
			"table '%s': data file '%s' (sequence %d)", table, fd.Path, fd.Sequence,
		)
	}

	f, err := parquet.OpenFile(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, r.corrupt(table, fd, err)
	}

	if recorded, ok := f.Lookup(metaColumns); ok {
		var fileSchema column.Schema
		if err := json.Unmarshal([]byte(recorded), &fileSchema); err != nil {
			return nil, r.corrupt(table, fd, err)
		}
		if !fileSchema.Equal(schema) {
			return nil, r.corrupt(table, fd, errors.Errorf("file schema %v differs from table schema", fileSchema.Names()))
		}
	}

	// leaf column index -> position in schema
	positions := make([]int, len(f.Schema().Columns()))
	for i := range positions {
		positions[i] = -1
	}
	for i, col := range schema {
		leaf, ok := f.Schema().Lookup(col.Name)
		if !ok {
			return nil, r.corrupt(table, fd, errors.Errorf("column '%s' not found in file", col.Name))
		}
		positions[leaf.ColumnIndex] = i
	}

	rows := make([][]interface{}, 0, f.NumRows())
	buf := make([]parquet.Row, readBatchSize)
	for _, rg := range f.RowGroups() {
		rr := rg.Rows()
		for {
			n, err := rr.ReadRows(buf)
			for _, record := range buf[:n] {
				row := make([]interface{}, len(schema))
				for _, v := range record {
					if pos := positions[v.Column()]; pos >= 0 {
						row[pos] = fromValue(schema[pos].Typ, v)
					}
				}
				rows = append(rows, row)
			}

			if err == io.EOF {
				break
			} else if err != nil {
				rr.Close()
				return nil, r.corrupt(table, fd, err)
			}
		}
		rr.Close()
	}

	if fd.RowCount != nil && *fd.RowCount != int64(len(rows)) {
		return nil, r.corrupt(table, fd, errors.Errorf("expected %d rows, found %d", *fd.RowCount, len(rows)))
	}
	return rows, nil
}

func (r *Reader) corrupt(table string, fd *manifest.FileDescriptor, err error) error {
	return customerrors.WithKind(
		customerrors.ErrCorruptDataFile, err,
		"table '%s': data file '%s' (sequence %d)", table, fd.Path, fd.Sequence,
	)
}
