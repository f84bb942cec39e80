package datafile

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strconv"
	"time"

	"go-lakedb/pkg/column"
	"go-lakedb/pkg/customerrors"
	"go-lakedb/pkg/manifest"
	"go-lakedb/pkg/types"
	"go-lakedb/util/helpers"

	"github.com/parquet-go/parquet-go"
	"github.com/pkg/errors"
)

type Writer struct {
	root        string
	compression parquet.WriterOption

	// now is overridable for deterministic timestamps.
	now func() time.Time
}

func NewWriter(root string, compression string) (*Writer, error) {
	codec, err := Codec(compression)
	if err != nil {
		return nil, err
	}

	return &Writer{
		root:        root,
		compression: codec,
		now:         time.Now,
	}, nil
}

// Write validates rows against schema and stores them as one new data file
// whose sequence number follows the highest one in files. The returned
// descriptor is not registered anywhere; that is up to the caller.
func (w *Writer) Write(
	table string,
	schema column.Schema,
	files manifest.Manifest,
	rows []types.DataRow,
) (*manifest.FileDescriptor, error) {
	if len(rows) == 0 {
		return nil, errors.Wrapf(customerrors.ErrInsertArityMismatch, "table '%s': empty row batch", table)
	}

	records, err := encodeRows(table, schema, rows)
	if err != nil {
		return nil, err
	}

	sequence := files.NextSequence()
	columns, err := json.Marshal(schema)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode schema")
	}

	buf := &bytes.Buffer{}
	pw := parquet.NewWriter(
		buf,
		parquetSchema(table, schema),
		w.compression,
		parquet.KeyValueMetadata(metaTable, table),
		parquet.KeyValueMetadata(metaSequence, strconv.FormatUint(sequence, 10)),
		parquet.KeyValueMetadata(metaColumns, string(columns)),
	)
	if _, err := pw.WriteRows(records); err != nil {
		return nil, errors.Wrapf(err, "failed to encode rows for table '%s'", table)
	}
	if err := pw.Close(); err != nil {
		return nil, errors.Wrapf(err, "failed to close parquet writer for table '%s'", table)
	}

	relPath := RelPath(table, sequence)
	if err := helpers.WriteFileAtomic(filepath.Join(w.root, relPath), buf.Bytes(), nil); err != nil {
		return nil, customerrors.WithKind(customerrors.ErrIOFailure, err, "write data file '%s'", relPath)
	}

	count := int64(len(rows))
	return &manifest.FileDescriptor{
		Path:      relPath,
		Sequence:  sequence,
		RowCount:  &count,
		Timestamp: helpers.FormatTime(w.now()),
	}, nil
}

// Validate checks that every row carries exactly the schema's columns.
func Validate(table string, schema column.Schema, rows []types.DataRow) error {
	names := schema.Names()
	for i, row := range rows {
		if len(row) == len(names) {
			matched := true
			for _, name := range names {
				if _, ok := row[name]; !ok {
					matched = false
					break
				}
			}
			if matched {
				continue
			}
		}

		keys := make([]string, 0, len(row))
		for k := range row {
			keys = append(keys, k)
		}
		missing, extra := helpers.Diff(names, keys)
		return &customerrors.SchemaMismatchError{
			Table:   table,
			Row:     i,
			Missing: missing,
			Extra:   extra,
		}
	}
	return nil
}

// encodeRows validates and casts rows into Parquet records laid out by leaf
// column index.
func encodeRows(table string, schema column.Schema, rows []types.DataRow) ([]parquet.Row, error) {
	if err := Validate(table, schema, rows); err != nil {
		return nil, err
	}

	ps := parquetSchema(table, schema)
	leaves := make([]int, len(schema))
	for i, col := range schema {
		leaf, ok := ps.Lookup(col.Name)
		if !ok {
			return nil, errors.Errorf("column '%s' missing from parquet schema", col.Name)
		}
		leaves[i] = leaf.ColumnIndex
	}

	records := make([]parquet.Row, len(rows))
	for i, row := range rows {
		record := make(parquet.Row, len(schema))
		for j, col := range schema {
			value, err := types.Cast(col.Typ, row[col.Name])
			if err != nil {
				return nil, errors.Wrapf(err, "table '%s', row %d, column '%s'", table, i, col.Name)
			}
			record[leaves[j]] = toValue(value, leaves[j])
		}
		records[i] = record
	}
	return records, nil
}
