package snapshot

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/featmat/codec"
	"github.com/hupe1980/featmat/dfm"
	"github.com/hupe1980/featmat/testutil"
)

func buildMatrix(t *testing.T) *dfm.DFM {
	t.Helper()
	m, err := dfm.NewBuilder(dfm.WithWeighting("count")).
		Document("d1", map[string]float64{"cat": 2, "dog": 1}).
		Document("d2", map[string]float64{"cat": 1, "fish": 3}).
		Build()
	require.NoError(t, err)
	return m
}

func assertEqualMatrix(t *testing.T, want, got *dfm.DFM) {
	t.Helper()
	require.Equal(t, want.DocNames(), got.DocNames())
	require.Equal(t, want.FeatNames(), got.FeatNames())
	assert.Equal(t, want.Weighting(), got.Weighting())
	assert.Equal(t, want.Concatenator(), got.Concatenator())
	for i := 0; i < want.NDoc(); i++ {
		for j := 0; j < want.NFeat(); j++ {
			a, err := want.Count(i, j)
			require.NoError(t, err)
			b, err := got.Count(i, j)
			require.NoError(t, err)
			require.Equal(t, a, b, "cell (%d,%d)", i, j)
		}
	}
	for j := 0; j < want.NFeat(); j++ {
		assert.Equal(t, want.IsPadding(j), got.IsPadding(j))
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	m := buildMatrix(t)

	for _, scheme := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		t.Run(scheme.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, m, WithCompression(scheme)))

			got, err := Read(&buf)
			require.NoError(t, err)
			assertEqualMatrix(t, m, got)
		})
	}
}

func TestWriteRead_CodecRecordedInHeader(t *testing.T) {
	m := buildMatrix(t)

	// Written with the stdlib codec, read back regardless of the package
	// default.
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m, WithCodec(codec.JSON{})))

	got, err := Read(&buf)
	require.NoError(t, err)
	assertEqualMatrix(t, m, got)
}

func TestRead_Errors(t *testing.T) {
	t.Run("bad magic", func(t *testing.T) {
		_, err := Read(bytes.NewReader([]byte("XXXX000000")))
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := Read(bytes.NewReader([]byte("FM")))
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("unsupported version", func(t *testing.T) {
		m := buildMatrix(t)
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, m))
		data := buf.Bytes()
		data[4] = 0xFF // version low byte
		_, err := Read(bytes.NewReader(data))
		assert.ErrorIs(t, err, ErrUnsupportedVersion)
	})

	t.Run("corrupt payload", func(t *testing.T) {
		m := buildMatrix(t)
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, m))
		data := buf.Bytes()
		_, err := Read(bytes.NewReader(data[:len(data)-4]))
		assert.Error(t, err)
	})
}

func TestSaveLoad_File(t *testing.T) {
	m := buildMatrix(t)
	path := filepath.Join(t.TempDir(), "matrix.fms")

	require.NoError(t, Save(path, m))
	got, err := Load(path)
	require.NoError(t, err)
	assertEqualMatrix(t, m, got)

	t.Run("overwrite existing", func(t *testing.T) {
		other, err := dfm.NewBuilder().
			Document("x", map[string]float64{"only": 1}).
			Build()
		require.NoError(t, err)

		require.NoError(t, Save(path, other))
		got, err := Load(path)
		require.NoError(t, err)
		assertEqualMatrix(t, other, got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.fms"))
		assert.Error(t, err)
	})
}

func TestSaveLoad_LargeMatrix(t *testing.T) {
	rng := testutil.NewRNG(42)
	m := testutil.RandomDFM(rng, 50, 500, 0.05)
	path := filepath.Join(t.TempDir(), "large.fms")

	require.NoError(t, Save(path, m, WithCompression(CompressionZSTD)))
	got, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, m.FeatNames(), got.FeatNames())
	require.Equal(t, m.DocNames(), got.DocNames())
	for j := 0; j < m.NFeat(); j++ {
		assert.Equal(t, m.ColSum(j), got.ColSum(j))
	}
}
