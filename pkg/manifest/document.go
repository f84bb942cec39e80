package manifest

import (
	"fmt"

	"go-lakedb/pkg/customerrors"
	"go-lakedb/util/helpers"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const DocumentVersion = 1

// Document is the single persisted root of the catalog.
type Document struct {
	Version int               `json:"version"`
	Tables  map[string]*Table `json:"tables"`
}

func NewDocument() *Document {
	return &Document{
		Version: DocumentVersion,
		Tables:  map[string]*Table{},
	}
}

func (d *Document) Table(name string) (*Table, bool) {
	t, ok := d.Tables[name]
	return t, ok
}

// Names returns the table names in lexical order.
func (d *Document) Names() []string {
	names := maps.Keys(d.Tables)
	slices.Sort(names)
	return names
}

func (d *Document) Clone() *Document {
	cp := &Document{
		Version: d.Version,
		Tables:  make(map[string]*Table, len(d.Tables)),
	}
	for name, t := range d.Tables {
		cp.Tables[name] = t.Clone()
	}
	return cp
}

// validate checks the invariants a loaded document must satisfy before it
// is trusted as the source of truth.
func (d *Document) validate() error {
	if d.Version != DocumentVersion {
		return fmt.Errorf("unsupported document version %d", d.Version)
	}

	for name, t := range d.Tables {
		if t == nil || t.Name != name {
			return fmt.Errorf("table entry '%s' doesn't match its key", name)
		}
		if err := t.Schema.Validate(); err != nil {
			return errors.Wrapf(err, "table '%s'", name)
		}

		var prev uint64
		for _, fd := range t.Files {
			if fd == nil || fd.Path == "" {
				return fmt.Errorf("table '%s' has an empty file descriptor", name)
			}
			if fd.Sequence <= prev {
				return fmt.Errorf("table '%s': sequence %d is not greater than %d", name, fd.Sequence, prev)
			}
			if fd.Timestamp != "" {
				if _, err := helpers.ParseTime(fd.Timestamp); err != nil {
					return errors.Wrapf(err, "table '%s': sequence %d", name, fd.Sequence)
				}
			}
			prev = fd.Sequence
		}
	}
	return nil
}

func corrupt(path string, err error) error {
	return customerrors.WithKind(customerrors.ErrCorruptMetadata, err, "catalog '%s'", path)
}
