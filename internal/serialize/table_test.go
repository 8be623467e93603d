package serialize

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugr-lab/typemap"
)

func TestMappingTable(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	defer mem.AssertSize(t, 0)

	record := MappingTable(mem)
	defer record.Release()

	wantRows := len(typemap.ArrowTypes()) + len(typemap.SQLTypes())
	require.EqualValues(t, wantRows, record.NumRows())
	require.True(t, record.Schema().Equal(MappingSchema))

	universe := record.Column(0).(*array.String)
	typeName := record.Column(1).(*array.String)
	support := record.Column(2).(*array.String)
	physical := record.Column(3).(*array.String)
	host := record.Column(4).(*array.String)
	sql := record.Column(5).(*array.String)

	rows := make(map[string]int)
	for i := 0; i < int(record.NumRows()); i++ {
		rows[universe.Value(i)+"/"+typeName.Value(i)] = i

		// Mapping columns are filled exactly for supported rows.
		supported := support.Value(i) == typemap.Supported.String()
		assert.Equal(t, supported, physical.IsValid(i), "row %d", i)
		assert.Equal(t, supported, host.IsValid(i), "row %d", i)
		assert.Equal(t, supported, sql.IsValid(i), "row %d", i)
	}

	i, ok := rows["sql/VARCHAR"]
	require.True(t, ok)
	assert.Equal(t, "utf8", physical.Value(i))
	assert.Equal(t, "Str", host.Value(i))

	i, ok = rows["sql/INTEGER"]
	require.True(t, ok)
	assert.Equal(t, "int8", physical.Value(i))

	i, ok = rows["sql/GEOMETRY"]
	require.True(t, ok)
	assert.Equal(t, "unsupported", support.Value(i))
	assert.True(t, physical.IsNull(i))
}

func TestSerializeRoundTrip(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	defer mem.AssertSize(t, 0)

	data, err := SerializeTable(mem)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	comp, err := NewCompressor()
	require.NoError(t, err)
	defer comp.Close()
	dec, err := NewDecompressor()
	require.NoError(t, err)
	defer dec.Close()

	compressed := comp.Compress(data)
	assert.Less(t, len(compressed), len(data))

	restored, err := dec.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, restored)

	records, err := ReadTable(restored, mem)
	require.NoError(t, err)
	require.Len(t, records, 1)
	defer records[0].Release()

	want := MappingTable(mem)
	defer want.Release()
	assert.True(t, array.RecordEqual(want, records[0]))
}

func TestDecompressGarbage(t *testing.T) {
	dec, err := NewDecompressor()
	require.NoError(t, err)
	defer dec.Close()

	_, err = dec.Decompress([]byte("not zstd"))
	require.Error(t, err)

	out, err := dec.Decompress(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCompressEmpty(t *testing.T) {
	comp, err := NewCompressor()
	require.NoError(t, err)
	defer comp.Close()

	assert.Empty(t, comp.Compress(nil))
	assert.NotEmpty(t, comp.Compress([]byte("payload")))
}
