// Package datafile writes row batches as immutable Parquet files and reads a
// table's manifest back into one row set.
package datafile

import (
	"fmt"
	"path/filepath"
	"strings"

	"go-lakedb/pkg/column"
	"go-lakedb/pkg/types"

	"github.com/parquet-go/parquet-go"
	"github.com/pkg/errors"
)

const (
	fileExt = ".parquet"

	// key/value metadata recorded in every data file
	metaTable    = "lakedb.table"
	metaSequence = "lakedb.sequence"
	metaColumns  = "lakedb.columns"
)

// FileName embeds the zero padded sequence number so lexical and numeric
// ordering of a table's files coincide.
func FileName(sequence uint64) string {
	return fmt.Sprintf("%020d%s", sequence, fileExt)
}

// RelPath is the data file location relative to the storage root.
func RelPath(table string, sequence uint64) string {
	return filepath.Join(table, FileName(sequence))
}

// Codec maps a configured compression name to a Parquet codec.
func Codec(name string) (parquet.WriterOption, error) {
	switch strings.ToLower(name) {
	case "", "snappy":
		return parquet.Compression(&parquet.Snappy), nil
	case "zstd":
		return parquet.Compression(&parquet.Zstd), nil
	case "gzip":
		return parquet.Compression(&parquet.Gzip), nil
	case "none", "uncompressed":
		return parquet.Compression(&parquet.Uncompressed), nil
	}
	return nil, errors.Errorf("unknown compression codec: '%s'", name)
}

// columnNode returns the Parquet leaf for a column type. Every leaf is
// optional so NULL round-trips.
func columnNode(typ types.TypeCode) parquet.Node {
	switch typ {
	case types.TYPE_INTEGER:
		return parquet.Optional(parquet.Int(64))
	case types.TYPE_FLOAT:
		return parquet.Optional(parquet.Leaf(parquet.DoubleType))
	case types.TYPE_BOOLEAN:
		return parquet.Optional(parquet.Leaf(parquet.BooleanType))
	default:
		return parquet.Optional(parquet.String())
	}
}

func parquetSchema(table string, schema column.Schema) *parquet.Schema {
	group := parquet.Group{}
	for _, col := range schema {
		group[col.Name] = columnNode(col.Typ)
	}
	return parquet.NewSchema(table, group)
}

// toValue encodes an already cast value as a leaf value of columnIndex.
func toValue(value interface{}, columnIndex int) parquet.Value {
	if value == nil {
		return parquet.NullValue().Level(0, 0, columnIndex)
	}
	return parquet.ValueOf(value).Level(0, 1, columnIndex)
}

func fromValue(typ types.TypeCode, v parquet.Value) interface{} {
	if v.IsNull() {
		return nil
	}

	switch typ {
	case types.TYPE_INTEGER:
		return v.Int64()
	case types.TYPE_FLOAT:
		return v.Double()
	case types.TYPE_BOOLEAN:
		return v.Boolean()
	default:
		return string(v.ByteArray())
	}
}
