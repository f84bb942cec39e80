package datafile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-lakedb/pkg/column"
	"go-lakedb/pkg/customerrors"
	"go-lakedb/pkg/manifest"
	"go-lakedb/pkg/types"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"
)

func schema() column.Schema {
	return column.Schema{
		column.New("id", types.TYPE_INTEGER),
		column.New("name", types.TYPE_TEXT),
		column.New("price", types.TYPE_FLOAT),
		column.New("paid", types.TYPE_BOOLEAN),
	}
}

func newWriter(t *testing.T, root string) *Writer {
	w, err := NewWriter(root, "snappy")
	require.NoError(t, err)
	w.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	return w
}

func TestFileName(t *testing.T) {
	require.Equal(t, "00000000000000000001.parquet", FileName(1))
	require.Equal(t, filepath.Join("orders", "00000000000000000042.parquet"), RelPath("orders", 42))
	require.Less(t, FileName(9), FileName(10))
}

func TestCodec(t *testing.T) {
	for _, name := range []string{"", "snappy", "ZSTD", "gzip", "none"} {
		_, err := Codec(name)
		require.NoError(t, err, name)
	}
	_, err := Codec("lzma")
	require.Error(t, err)
}

func TestWriteRead(t *testing.T) {
	root := t.TempDir()
	w := newWriter(t, root)
	r := NewReader(root, 2)
	s := schema()

	var files manifest.Manifest

	fd, err := w.Write("orders", s, files, []types.DataRow{
		{"name": "a", "id": "1", "price": 9.5, "paid": true},
		{"paid": "false", "price": "3", "name": "b", "id": 2},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), fd.Sequence)
	require.Equal(t, RelPath("orders", 1), fd.Path)
	require.Equal(t, int64(2), *fd.RowCount)
	require.Equal(t, "2024-05-01 10:00:00.000000", fd.Timestamp)
	files = append(files, fd)

	fd, err = w.Write("orders", s, files, []types.DataRow{
		{"id": 3, "name": "c", "price": nil, "paid": nil},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(2), fd.Sequence)
	files = append(files, fd)

	rs, err := r.Read("orders", s, files, ReadOptions{})
	require.NoError(t, err)
	require.Equal(t, s.Names(), rs.Columns.Names())
	require.Empty(t, rs.Missing)
	require.Equal(t, [][]interface{}{
		{int64(1), "a", 9.5, true},
		{int64(2), "b", 3.0, false},
		{int64(3), "c", nil, nil},
	}, rs.Rows)
}

func TestWriteRecordsSchemaOrder(t *testing.T) {
	root := t.TempDir()
	w := newWriter(t, root)
	s := column.Schema{
		column.New("zeta", types.TYPE_TEXT),
		column.New("alpha", types.TYPE_INTEGER),
	}

	fd, err := w.Write("t", s, nil, []types.DataRow{{"alpha": 1, "zeta": "z"}})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, fd.Path))
	require.NoError(t, err)
	f, err := parquet.OpenFile(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Equal(t, int64(1), f.NumRows())

	recorded, ok := f.Lookup(metaColumns)
	require.True(t, ok)
	require.JSONEq(t, `[{"name":"zeta","type":"TEXT"},{"name":"alpha","type":"INT"}]`, recorded)

	seq, ok := f.Lookup(metaSequence)
	require.True(t, ok)
	require.Equal(t, "1", seq)

	rs, err := NewReader(root, 1).Read("t", s, manifest.Manifest{fd}, ReadOptions{})
	require.NoError(t, err)
	require.Equal(t, [][]interface{}{{"z", int64(1)}}, rs.Rows)
}

func TestWriteSequenceFollowsManifest(t *testing.T) {
	w := newWriter(t, t.TempDir())
	files := manifest.Manifest{
		{Path: "orders/a", Sequence: 3},
		{Path: "orders/b", Sequence: 7},
	}

	fd, err := w.Write("orders", schema(), files, []types.DataRow{
		{"id": 1, "name": "a", "price": 1, "paid": true},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(8), fd.Sequence)
}

func TestWriteSchemaMismatch(t *testing.T) {
	root := t.TempDir()
	w := newWriter(t, root)

	cases := []types.DataRow{
		{"id": 1, "name": "a", "price": 1},
		{"id": 1, "name": "a", "price": 1, "paid": true, "extra": 1},
		{"id": 1, "name": "a", "price": 1, "other": true},
	}
	for _, row := range cases {
		_, err := w.Write("orders", schema(), nil, []types.DataRow{
			{"id": 1, "name": "ok", "price": 1, "paid": true},
			row,
		})
		require.ErrorIs(t, err, customerrors.ErrSchemaMismatch)

		var sm *customerrors.SchemaMismatchError
		require.ErrorAs(t, err, &sm)
		require.Equal(t, 1, sm.Row)
		require.Equal(t, "orders", sm.Table)
	}

	_, err := w.Write("orders", schema(), nil, []types.DataRow{{"id": 1, "name": "a", "price": 1, "other": true}})
	var sm *customerrors.SchemaMismatchError
	require.ErrorAs(t, err, &sm)
	require.Equal(t, []string{"paid"}, sm.Missing)
	require.Equal(t, []string{"other"}, sm.Extra)

	_, err = os.Stat(filepath.Join(root, "orders"))
	require.True(t, os.IsNotExist(err), "no data file may be written on mismatch")
}

func TestWriteInvalidValue(t *testing.T) {
	root := t.TempDir()
	_, err := newWriter(t, root).Write("orders", schema(), nil, []types.DataRow{
		{"id": "one", "name": "a", "price": 1, "paid": true},
	})
	require.ErrorIs(t, err, customerrors.ErrInvalidValue)
	require.Contains(t, err.Error(), "'id'")

	_, err = os.Stat(filepath.Join(root, "orders"))
	require.True(t, os.IsNotExist(err))
}

func TestWriteEmptyBatch(t *testing.T) {
	_, err := newWriter(t, t.TempDir()).Write("orders", schema(), nil, nil)
	require.ErrorIs(t, err, customerrors.ErrInsertArityMismatch)
}

func TestReadEmptyManifest(t *testing.T) {
	_, err := NewReader(t.TempDir(), 1).Read("orders", schema(), nil, ReadOptions{})
	require.ErrorIs(t, err, customerrors.ErrTableEmpty)
}

func writeThree(t *testing.T, root string) manifest.Manifest {
	w := newWriter(t, root)
	var files manifest.Manifest
	for i := 1; i <= 3; i++ {
		fd, err := w.Write("orders", schema(), files, []types.DataRow{
			{"id": i, "name": "n", "price": 1, "paid": false},
		})
		require.NoError(t, err)
		files = append(files, fd)
	}
	return files
}

func TestReadMissingFileFailFast(t *testing.T) {
	root := t.TempDir()
	files := writeThree(t, root)
	require.NoError(t, os.Remove(filepath.Join(root, files[1].Path)))

	_, err := NewReader(root, 3).Read("orders", schema(), files, ReadOptions{})
	require.ErrorIs(t, err, customerrors.ErrMissingDataFile)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Contains(t, err.Error(), files[1].Path)
}

func TestReadMissingFilePartial(t *testing.T) {
	root := t.TempDir()
	files := writeThree(t, root)
	require.NoError(t, os.Remove(filepath.Join(root, files[1].Path)))

	rs, err := NewReader(root, 3).Read("orders", schema(), files, ReadOptions{AllowPartial: true})
	require.NoError(t, err)
	require.Len(t, rs.Rows, 2)
	require.Equal(t, int64(1), rs.Rows[0][0])
	require.Equal(t, int64(3), rs.Rows[1][0])
	require.Len(t, rs.Missing, 1)
	require.Equal(t, uint64(2), rs.Missing[0].Sequence)
}

func TestReadCorruptFile(t *testing.T) {
	root := t.TempDir()
	files := writeThree(t, root)
	require.NoError(t, os.WriteFile(filepath.Join(root, files[0].Path), []byte("garbage"), 0644))

	_, err := NewReader(root, 1).Read("orders", schema(), files, ReadOptions{AllowPartial: true})
	require.ErrorIs(t, err, customerrors.ErrCorruptDataFile)
}

func TestReadRowCountMismatch(t *testing.T) {
	root := t.TempDir()
	files := writeThree(t, root)
	n := int64(5)
	files[2].RowCount = &n

	_, err := NewReader(root, 1).Read("orders", schema(), files, ReadOptions{})
	require.ErrorIs(t, err, customerrors.ErrCorruptDataFile)
}

func TestReadSchemaDrift(t *testing.T) {
	root := t.TempDir()
	files := writeThree(t, root)

	other := schema()
	other[1] = column.New("title", types.TYPE_TEXT)
	_, err := NewReader(root, 1).Read("orders", other, files, ReadOptions{})
	require.ErrorIs(t, err, customerrors.ErrCorruptDataFile)
}
