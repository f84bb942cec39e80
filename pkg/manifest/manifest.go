// Package manifest holds the catalog document: per table, its schema and the
// ordered list of immutable data files that make up its contents.
package manifest

import (
	"go-lakedb/pkg/column"
)

// FileDescriptor references one immutable data file. Sequence orders the
// files of a table; Timestamp is informational only.
type FileDescriptor struct {
	Path      string `json:"path"`
	Sequence  uint64 `json:"sequence"`
	RowCount  *int64 `json:"row_count,omitempty"`
	Timestamp string `json:"timestamp"`
}

func (fd *FileDescriptor) Clone() *FileDescriptor {
	cp := *fd
	if fd.RowCount != nil {
		n := *fd.RowCount
		cp.RowCount = &n
	}
	return &cp
}

// Manifest is the append-only file list of one table, in sequence order.
type Manifest []*FileDescriptor

// LastSequence returns the highest issued sequence number, 0 when empty.
func (m Manifest) LastSequence() uint64 {
	var last uint64
	for _, fd := range m {
		if fd.Sequence > last {
			last = fd.Sequence
		}
	}
	return last
}

func (m Manifest) NextSequence() uint64 {
	return m.LastSequence() + 1
}

// RowCount sums the recorded row counts. ok is false if any file has none.
func (m Manifest) RowCount() (total int64, ok bool) {
	for _, fd := range m {
		if fd.RowCount == nil {
			return 0, false
		}
		total += *fd.RowCount
	}
	return total, true
}

func (m Manifest) Clone() Manifest {
	cp := make(Manifest, len(m))
	for i, fd := range m {
		cp[i] = fd.Clone()
	}
	return cp
}

type Table struct {
	Name   string        `json:"name"`
	Schema column.Schema `json:"schema"`
	Files  Manifest      `json:"files"`
}

func (t *Table) Clone() *Table {
	return &Table{
		Name:   t.Name,
		Schema: t.Schema.Clone(),
		Files:  t.Files.Clone(),
	}
}
