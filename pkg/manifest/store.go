package manifest

import (
	"bytes"
	"encoding/json"
	"os"

	"go-lakedb/pkg/customerrors"
	"go-lakedb/util/helpers"
)

// Store persists the catalog document as a whole. Every mutation is
// load, mutate in memory, save.
type Store interface {
	Load() (*Document, error)
	Save(doc *Document) error
}

// FileStore keeps the document in one JSON file, replaced atomically on
// every Save.
type FileStore struct {
	path string

	// beforeRename runs between writing the temp file and renaming it into
	// place. Tests use it to simulate a crash mid-save.
	beforeRename func(tmpPath string) error
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Load returns an empty document when nothing has been saved yet.
func (s *FileStore) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return NewDocument(), nil
	} else if err != nil {
		return nil, customerrors.WithKind(customerrors.ErrIOFailure, err, "read catalog '%s'", s.path)
	}

	doc := &Document{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(doc); err != nil {
		return nil, corrupt(s.path, err)
	}
	if doc.Tables == nil {
		doc.Tables = map[string]*Table{}
	}
	if err := doc.validate(); err != nil {
		return nil, corrupt(s.path, err)
	}
	return doc, nil
}

// Save serializes doc and atomically replaces the persisted document. On
// failure the previously saved document stays intact, except for errors
// matching customerrors.ErrNotDurable: those are returned after doc has
// replaced it.
func (s *FileStore) Save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return customerrors.WithKind(customerrors.ErrIOFailure, err, "encode catalog '%s'", s.path)
	}

	if err := helpers.WriteFileAtomic(s.path, data, s.beforeRename); err != nil {
		return customerrors.WithKind(customerrors.ErrIOFailure, err, "save catalog '%s'", s.path)
	}
	return nil
}
