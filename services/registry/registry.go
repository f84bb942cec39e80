// Package registry is the table catalog: it owns the catalog document and
// composes the manifest store with the data file writer and reader to
// implement table lifecycle operations.
package registry

import (
	"path/filepath"
	"sync"

	"go-lakedb/config"
	"go-lakedb/pkg/column"
	"go-lakedb/pkg/customerrors"
	"go-lakedb/pkg/datafile"
	"go-lakedb/pkg/manifest"
	"go-lakedb/util/helpers"
	"go-lakedb/util/logger"

	"github.com/pkg/errors"
)

// Registry serializes mutations internally: create and append hold the
// write lock from validation until the catalog is persisted. Reads only
// hold the read lock while snapshotting a table's manifest; data files
// are immutable, so decoding happens without it.
type Registry struct {
	dataPath string
	store    manifest.Store
	writer   *datafile.Writer
	reader   *datafile.Reader

	mu  sync.RWMutex
	doc *manifest.Document
}

// New opens the registry described by cfg, loading the catalog document
// from cfg.CatalogPath.
func New(cfg *config.StorageConfig) (*Registry, error) {
	writer, err := datafile.NewWriter(cfg.DataPath, cfg.Compression)
	if err != nil {
		return nil, errors.Wrap(err, "invalid storage config")
	}

	return Open(
		cfg.DataPath,
		manifest.NewFileStore(cfg.CatalogPath),
		writer,
		datafile.NewReader(cfg.DataPath, cfg.ReadParallelism),
	)
}

func Open(dataPath string, store manifest.Store, writer *datafile.Writer, reader *datafile.Reader) (*Registry, error) {
	if err := helpers.CreateDir(dataPath); err != nil {
		return nil, customerrors.WithKind(customerrors.ErrIOFailure, err, "create data directory '%s'", dataPath)
	}

	doc, err := store.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	logger.L.WithField("tables", len(doc.Tables)).Info("catalog loaded")

	return &Registry{
		dataPath: dataPath,
		store:    store,
		writer:   writer,
		reader:   reader,
		doc:      doc,
	}, nil
}

func (r *Registry) ListTables() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc.Names()
}

func (r *Registry) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.doc.Table(name)
	return ok
}

// Describe returns a copy of the table's schema and manifest.
func (r *Registry) Describe(name string) (*manifest.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, err := r.table(name)
	if err != nil {
		return nil, err
	}
	return t.Clone(), nil
}

func (r *Registry) Schema(name string) (column.Schema, error) {
	t, err := r.Describe(name)
	if err != nil {
		return nil, err
	}
	return t.Schema, nil
}

func (r *Registry) Files(name string) (manifest.Manifest, error) {
	t, err := r.Describe(name)
	if err != nil {
		return nil, err
	}
	return t.Files, nil
}

// table must be called with r.mu held.
func (r *Registry) table(name string) (*manifest.Table, error) {
	t, ok := r.doc.Table(name)
	if !ok {
		return nil, errors.Wrapf(customerrors.ErrTableNotFound, "'%s'", name)
	}
	return t, nil
}

// commit applies mutate to a copy of the document and persists it. The
// in-memory document is swapped only once the store holds the new one, so
// it always matches what a reload would return. Must be called with r.mu
// held for writing.
func (r *Registry) commit(mutate func(doc *manifest.Document)) error {
	next := r.doc.Clone()
	mutate(next)

	if err := r.store.Save(next); err != nil {
		if errors.Is(err, customerrors.ErrNotDurable) {
			r.doc = next
		}
		return err
	}
	r.doc = next
	return nil
}

func (r *Registry) tablePath(name string) string {
	return filepath.Join(r.dataPath, name)
}
