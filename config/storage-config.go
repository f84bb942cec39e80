package config

import "path/filepath"

type StorageConfig struct {
	// DataPath is the root under which every table gets its own directory
	// of data files.
	DataPath string
	// CatalogPath is the metadata document holding schemas and manifests.
	CatalogPath string
	// ReadParallelism bounds how many data files a read decodes at once.
	ReadParallelism int
	// Compression is the data file codec: snappy, zstd, gzip or none.
	Compression string
}

func NewStorageConfig() *StorageConfig {
	return &StorageConfig{
		DataPath:        filepath.Join("data", "storage"),
		CatalogPath:     filepath.Join("data", "catalog", "manifest.json"),
		ReadParallelism: 4,
		Compression:     "snappy",
	}
}

// WithRoot places both the data directory and the catalog under root.
func (c *StorageConfig) WithRoot(root string) *StorageConfig {
	cp := *c
	cp.DataPath = filepath.Join(root, "storage")
	cp.CatalogPath = filepath.Join(root, "catalog", "manifest.json")
	return &cp
}
