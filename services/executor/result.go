package executor

import (
	"encoding/json"
	"io"

	"go-lakedb/pkg/column"
	"go-lakedb/pkg/manifest"
	"go-lakedb/services/plan"
	"go-lakedb/util/response"

	"github.com/pkg/errors"
)

// Result is the success payload of one plan: the created table's schema,
// the inserted row count and its data file, or a projected row set.
type Result struct {
	Kind     plan.Kind
	Table    string
	Columns  column.Schema
	Inserted int
	File     *manifest.FileDescriptor
	Rows     [][]interface{}
	Missing  manifest.Manifest
}

type header struct {
	Kind     plan.Kind                `json:"kind"`
	Table    string                   `json:"table"`
	Columns  column.Schema            `json:"columns,omitempty"`
	Inserted int                      `json:"inserted,omitempty"`
	File     *manifest.FileDescriptor `json:"file,omitempty"`
	Rows     int                      `json:"rows,omitempty"`
	Missing  manifest.Manifest        `json:"missing,omitempty"`
}

// WriteTo writes the result as framed lines: a JSON header, followed for
// SELECT by one JSON array per row.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	rw := response.NewWriter(w)

	h := header{
		Kind:     r.Kind,
		Table:    r.Table,
		Columns:  r.Columns,
		Inserted: r.Inserted,
		File:     r.File,
		Rows:     len(r.Rows),
		Missing:  r.Missing,
	}
	blob, err := json.Marshal(h)
	if err != nil {
		return 0, errors.Wrap(err, "failed to marshal result header")
	}

	n, err := rw.WriteLine(blob)
	total := int64(n)
	if err != nil {
		return total, errors.Wrap(err, "failed to write result header")
	}

	for _, row := range r.Rows {
		blob, err := json.Marshal(row)
		if err != nil {
			return total, errors.Wrap(err, "failed to marshal record")
		}

		n, err := rw.WriteLine(blob)
		total += int64(n)
		if err != nil {
			return total, errors.Wrap(err, "failed to write record")
		}
	}
	return total, nil
}
