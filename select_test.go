package featmat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/featmat/dfm"
	"github.com/hupe1980/featmat/dict"
)

func buildDFM(t *testing.T, docs map[string]map[string]float64, order []string) *dfm.DFM {
	t.Helper()
	b := dfm.NewBuilder()
	for _, id := range order {
		b.Document(id, docs[id])
	}
	m, err := b.Build()
	require.NoError(t, err)
	return m
}

func animalDFM(t *testing.T) *dfm.DFM {
	t.Helper()
	return buildDFM(t, map[string]map[string]float64{
		"d1": {"cat": 2, "cats": 1, "dog": 3},
		"d2": {"cat": 1, "bird": 4},
	}, []string{"d1", "d2"})
}

func TestSelect_FixedKeep(t *testing.T) {
	m := buildDFM(t, map[string]map[string]float64{
		"d1": {"a": 1, "ab": 2, "abc": 3},
	}, []string{"d1"})

	out, err := Select(m, []string{"ab"}, WithMatchMode(MatchFixed))
	require.NoError(t, err)
	assert.Equal(t, []string{"ab"}, out.FeatNames())

	v, err := out.Count(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestSelect_GlobKeep(t *testing.T) {
	m := animalDFM(t)

	out, err := Select(m, []string{"cat*"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "cats"}, out.FeatNames())
}

func TestSelect_Remove(t *testing.T) {
	m := animalDFM(t)

	out, err := Remove(m, []string{"cat*"})
	require.NoError(t, err)
	assert.Equal(t, []string{"dog", "bird"}, out.FeatNames())
}

func TestSelect_DefaultsAreGlobCaseInsensitiveKeep(t *testing.T) {
	m := buildDFM(t, map[string]map[string]float64{
		"d1": {"Cat": 1, "CATS": 2, "dog": 3},
	}, []string{"d1"})

	out, err := Select(m, []string{"cat*"})
	require.NoError(t, err)
	assert.Equal(t, []string{"CATS", "Cat"}, out.FeatNames())

	out, err = Select(m, []string{"cat*"}, WithCaseSensitive())
	require.NoError(t, err)
	assert.Empty(t, out.FeatNames())
}

func TestSelect_Dictionary(t *testing.T) {
	m := buildDFM(t, map[string]map[string]float64{
		"d1": {"New_York": 2, "York": 1, "Boston": 3},
	}, []string{"d1"})

	d, err := dict.New(dict.Category{Name: "cities", Entries: []string{"New York", "Boston"}})
	require.NoError(t, err)

	out, err := Select(m, d, WithMatchMode(MatchFixed))
	require.NoError(t, err)
	assert.Equal(t, []string{"Boston", "New_York"}, out.FeatNames())
}

func TestSelect_DictionaryCustomConcatenator(t *testing.T) {
	b := dfm.NewBuilder(dfm.WithConcatenator("+"))
	b.Document("d1", map[string]float64{"New+York": 1, "New_York": 1})
	m, err := b.Build()
	require.NoError(t, err)

	d, err := dict.New(dict.Category{Name: "cities", Entries: []string{"New York"}})
	require.NoError(t, err)

	out, err := Select(m, d, WithMatchMode(MatchFixed))
	require.NoError(t, err)
	assert.Equal(t, []string{"New+York"}, out.FeatNames())
}

func TestSelect_LengthFilter(t *testing.T) {
	m := buildDFM(t, map[string]map[string]float64{
		"d1": {"a": 1, "bcde": 2, "fghij": 3},
	}, []string{"d1"})

	t.Run("min only", func(t *testing.T) {
		out, err := Select(m, nil, WithLenRange(5, 0))
		require.NoError(t, err)
		assert.Equal(t, []string{"fghij"}, out.FeatNames())
	})

	t.Run("range", func(t *testing.T) {
		out, err := Select(m, nil, WithLenRange(2, 4))
		require.NoError(t, err)
		assert.Equal(t, []string{"bcde"}, out.FeatNames())
	})

	t.Run("narrows pattern result", func(t *testing.T) {
		out, err := Select(m, []string{"*"}, WithLenRange(4, 0))
		require.NoError(t, err)
		assert.Equal(t, []string{"bcde", "fghij"}, out.FeatNames())
	})

	t.Run("applies to remove as well", func(t *testing.T) {
		out, err := Remove(m, []string{"bcde"}, WithLenRange(1, 4))
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, out.FeatNames())
	})

	t.Run("length measured in characters not bytes", func(t *testing.T) {
		m2 := buildDFM(t, map[string]map[string]float64{
			"d1": {"héllo": 1},
		}, []string{"d1"})
		out, err := Select(m2, nil, WithLenRange(1, 5))
		require.NoError(t, err)
		assert.Equal(t, []string{"héllo"}, out.FeatNames())
	})
}

func TestSelect_EmptySource(t *testing.T) {
	m := animalDFM(t)

	t.Run("keep everything", func(t *testing.T) {
		out, err := Select(m, nil)
		require.NoError(t, err)
		assert.Equal(t, m.FeatNames(), out.FeatNames())
	})

	t.Run("empty list keeps everything", func(t *testing.T) {
		out, err := Select(m, []string{})
		require.NoError(t, err)
		assert.Equal(t, m.FeatNames(), out.FeatNames())
	})

	t.Run("remove nothing", func(t *testing.T) {
		out, err := Remove(m, nil)
		require.NoError(t, err)
		assert.Equal(t, m.FeatNames(), out.FeatNames())
	})
}

func TestSelect_EmptyResultIsValid(t *testing.T) {
	m := animalDFM(t)

	out, err := Select(m, []string{"zebra"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.NFeat())
	assert.Equal(t, m.NDoc(), out.NDoc())
	assert.Empty(t, out.FeatNames())
}

func TestSelect_Errors(t *testing.T) {
	m := animalDFM(t)

	t.Run("invalid regex", func(t *testing.T) {
		_, err := Select(m, []string{"("}, WithMatchMode(MatchRegex))
		require.Error(t, err)
		var ip *ErrInvalidPattern
		require.True(t, errors.As(err, &ip))
		assert.Equal(t, "(", ip.Pattern)
	})

	t.Run("unsupported source type", func(t *testing.T) {
		_, err := Select(m, 42)
		require.Error(t, err)
		var ut *ErrUnsupportedType
		assert.True(t, errors.As(err, &ut))
	})

	t.Run("nil matrix", func(t *testing.T) {
		_, err := Select(nil, []string{"cat"})
		require.Error(t, err)
		var ut *ErrUnsupportedType
		assert.True(t, errors.As(err, &ut))
	})

	t.Run("nil dictionary", func(t *testing.T) {
		_, err := Select(m, (*dict.Dictionary)(nil))
		require.Error(t, err)
		var ut *ErrUnsupportedType
		assert.True(t, errors.As(err, &ut))
	})

	t.Run("explicit mode on Keep", func(t *testing.T) {
		_, err := Keep(m, []string{"cat"}, WithMode(ModeKeep))
		assert.ErrorIs(t, err, ErrConflictingArgument)
	})

	t.Run("explicit mode on Remove", func(t *testing.T) {
		_, err := Remove(m, []string{"cat"}, WithMode(ModeRemove))
		assert.ErrorIs(t, err, ErrConflictingArgument)
	})
}

func TestSelect_OrderInvariance(t *testing.T) {
	m := animalDFM(t)
	want := []string{"cat", "cats", "bird"}

	permutations := [][]string{
		{"cat*", "bird"},
		{"bird", "cat*"},
		{"bird", "cat*", "cat*"},
	}
	for _, p := range permutations {
		out, err := Select(m, p)
		require.NoError(t, err)
		assert.Equal(t, want, out.FeatNames(), "patterns %v", p)
	}
}

func TestSelect_KeepRemoveComplementarity(t *testing.T) {
	m := animalDFM(t)
	patterns := []string{"cat*", "d?g"}

	kept, err := Keep(m, patterns)
	require.NoError(t, err)
	removed, err := Remove(m, patterns)
	require.NoError(t, err)

	union := append(kept.FeatNames(), removed.FeatNames()...)
	assert.ElementsMatch(t, m.FeatNames(), union)

	for _, f := range kept.FeatNames() {
		assert.NotContains(t, removed.FeatNames(), f)
	}
}

func TestSelect_Idempotence(t *testing.T) {
	m := animalDFM(t)
	patterns := []string{"cat*", "bird"}

	once, err := Keep(m, patterns)
	require.NoError(t, err)
	twice, err := Keep(once, patterns)
	require.NoError(t, err)

	assert.Equal(t, once.FeatNames(), twice.FeatNames())
	for i := 0; i < once.NDoc(); i++ {
		for j := 0; j < once.NFeat(); j++ {
			a, err := once.Count(i, j)
			require.NoError(t, err)
			b, err := twice.Count(i, j)
			require.NoError(t, err)
			assert.Equal(t, a, b)
		}
	}
}

func TestSelect_LengthFilterMonotonicity(t *testing.T) {
	m := buildDFM(t, map[string]map[string]float64{
		"d1": {"a": 1, "bb": 1, "ccc": 1, "dddd": 1, "eeeee": 1},
	}, []string{"d1"})

	prev := m.NFeat() + 1
	for _, bounds := range [][2]int{{1, 0}, {2, 5}, {2, 4}, {3, 3}, {4, 3}} {
		out, err := Select(m, nil, WithLenRange(bounds[0], bounds[1]))
		require.NoError(t, err)
		assert.LessOrEqual(t, out.NFeat(), prev, "bounds %v", bounds)
		prev = out.NFeat()
	}
}

func TestSelect_InputMatrixUntouched(t *testing.T) {
	m := animalDFM(t)
	before := m.FeatNames()

	_, err := Select(m, []string{"cat*"})
	require.NoError(t, err)
	_, err = Remove(m, []string{"*"})
	require.NoError(t, err)

	assert.Equal(t, before, m.FeatNames())
}

func TestSelect_VerboseDoesNotAffectResult(t *testing.T) {
	m := animalDFM(t)

	quiet, err := Select(m, []string{"cat*"})
	require.NoError(t, err)
	loud, err := Select(m, []string{"cat*"}, WithVerbose(), WithLogger(NoopLogger()))
	require.NoError(t, err)

	assert.Equal(t, quiet.FeatNames(), loud.FeatNames())
}

func TestSelect_MetricsCollector(t *testing.T) {
	m := animalDFM(t)
	mc := &BasicMetricsCollector{}

	_, err := Select(m, []string{"cat*", "nomatch"}, WithMetricsCollector(mc))
	require.NoError(t, err)
	_, err = Select(m, []string{"("}, WithMatchMode(MatchRegex), WithMetricsCollector(mc))
	require.Error(t, err)

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.SelectCount)
	assert.Equal(t, int64(1), stats.SelectErrors)
}
