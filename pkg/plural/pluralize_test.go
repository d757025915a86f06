package plural_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apollo-Deploy/g11n/pkg/plural"
)

func TestTableResolve_CLDRForms(t *testing.T) {
	t.Parallel()

	t.Run("english cardinal", func(t *testing.T) {
		t.Parallel()

		table := plural.Table{Forms: map[string]string{
			"one":   "X",
			"other": "Y",
		}}

		require.Equal(t, "X", table.Resolve("en", 1))
		require.Equal(t, "Y", table.Resolve("en", 2))
		require.Equal(t, "Y", table.Resolve("en", 0))
	})

	t.Run("french zero is singular", func(t *testing.T) {
		t.Parallel()

		table := plural.Table{Forms: map[string]string{
			"one":   "A",
			"other": "B",
		}}

		require.Equal(t, "A", table.Resolve("fr", 0))
		require.Equal(t, "A", table.Resolve("fr", 1))
		require.Equal(t, "B", table.Resolve("fr", 2))
	})

	t.Run("arabic few band", func(t *testing.T) {
		t.Parallel()

		table := plural.Table{Forms: map[string]string{
			"few":   "F",
			"other": "O",
		}}

		require.Equal(t, "F", table.Resolve("ar", 5))
		require.Equal(t, "O", table.Resolve("ar", 100))
	})

	t.Run("english ordinal", func(t *testing.T) {
		t.Parallel()

		table := plural.Table{Forms: map[string]string{
			"one":   "1st",
			"two":   "2nd",
			"few":   "3rd",
			"other": "Nth",
		}}

		require.Equal(t, "3rd", table.Resolve("en", 23, plural.Ordinal()))
		require.Equal(t, "1st", table.Resolve("en", 21, plural.Ordinal()))
		require.Equal(t, "Nth", table.Resolve("en", 11, plural.Ordinal()))
	})
}

func TestTableResolve_Overrides(t *testing.T) {
	t.Parallel()

	t.Run("exact count wins over form", func(t *testing.T) {
		t.Parallel()

		table := plural.Table{Forms: map[string]string{
			"1":     "just one",
			"one":   "a single item",
			"other": "items",
		}}

		require.Equal(t, "just one", table.Resolve("en", 1))
		require.Equal(t, "items", table.Resolve("en", 2))
	})

	t.Run("negative exact count", func(t *testing.T) {
		t.Parallel()

		table := plural.Table{Forms: map[string]string{
			"-1":    "owe one",
			"one":   "have one",
			"other": "have some",
		}}

		require.Equal(t, "owe one", table.Resolve("en", -1))
		require.Equal(t, "have one", table.Resolve("en", 1))
	})

	t.Run("inclusive interval", func(t *testing.T) {
		t.Parallel()

		table := plural.Table{Forms: map[string]string{
			"2-5":   "a few",
			"other": "many",
		}}

		require.Equal(t, "a few", table.Resolve("en", 2))
		require.Equal(t, "a few", table.Resolve("en", 5))
		require.Equal(t, "many", table.Resolve("en", 6))
		require.Equal(t, "many", table.Resolve("en", 1))
	})

	t.Run("open ended interval", func(t *testing.T) {
		t.Parallel()

		table := plural.Table{Forms: map[string]string{
			"11+":   "lots",
			"other": "some",
		}}

		require.Equal(t, "lots", table.Resolve("en", 11))
		require.Equal(t, "lots", table.Resolve("en", 5000))
		require.Equal(t, "some", table.Resolve("en", 10))
	})

	t.Run("overlapping intervals checked lowest bound first", func(t *testing.T) {
		t.Parallel()

		table := plural.Table{Forms: map[string]string{
			"2-10":  "low",
			"5+":    "high",
			"other": "none",
		}}

		require.Equal(t, "low", table.Resolve("en", 7))
		require.Equal(t, "high", table.Resolve("en", 50))
		require.Equal(t, "none", table.Resolve("en", 1))
	})

	t.Run("malformed interval keys ignored", func(t *testing.T) {
		t.Parallel()

		table := plural.Table{Forms: map[string]string{
			"5-2":   "backwards",
			"a-b":   "letters",
			"+":     "bare plus",
			"other": "fallback",
		}}

		require.Equal(t, "fallback", table.Resolve("en", 3))
	})
}

func TestTableResolve_Contexts(t *testing.T) {
	t.Parallel()

	table := plural.Table{
		Forms: map[string]string{
			"one":   "1 ami",
			"other": "{{count}} amis",
		},
		Contexts: map[string]map[string]string{
			"female": {
				"one":   "1 amie",
				"other": "{{count}} amies",
			},
		},
	}

	t.Run("context form set selected", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "1 amie", table.Resolve("fr", 1, plural.Context("female")))
		require.Equal(t, "{{count}} amies", table.Resolve("fr", 3, plural.Context("female")))
	})

	t.Run("unknown context falls back to outer forms", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "1 ami", table.Resolve("fr", 1, plural.Context("neuter")))
	})

	t.Run("no context uses outer forms", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "1 ami", table.Resolve("fr", 1))
	})

	t.Run("outer interval wins over context", func(t *testing.T) {
		t.Parallel()

		mixed := plural.Table{
			Forms: map[string]string{
				"2-5":   "outer range",
				"other": "outer",
			},
			Contexts: map[string]map[string]string{
				"female": {"other": "inner"},
			},
		}

		require.Equal(t, "outer range", mixed.Resolve("en", 3, plural.Context("female")))
	})

	t.Run("exact count applies inside context", func(t *testing.T) {
		t.Parallel()

		mixed := plural.Table{
			Contexts: map[string]map[string]string{
				"male": {
					"3":     "special",
					"other": "normal",
				},
			},
		}

		require.Equal(t, "special", mixed.Resolve("en", 3, plural.Context("male")))
		require.Equal(t, "normal", mixed.Resolve("en", 4, plural.Context("male")))
	})

	t.Run("intervals do not apply inside context", func(t *testing.T) {
		t.Parallel()

		mixed := plural.Table{
			Contexts: map[string]map[string]string{
				"male": {
					"2-5":   "ranged",
					"other": "normal",
				},
			},
		}

		require.Equal(t, "normal", mixed.Resolve("en", 3, plural.Context("male")))
	})
}

func TestTableResolve_Degradation(t *testing.T) {
	t.Parallel()

	t.Run("missing form falls back to other", func(t *testing.T) {
		t.Parallel()

		table := plural.Table{Forms: map[string]string{
			"other": "O",
		}}

		require.Equal(t, "O", table.Resolve("ar", 5))
		require.Equal(t, "O", table.Resolve("en", 1))
	})

	t.Run("nothing resolves yields the count", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, "7", plural.Table{}.Resolve("en", 7))
		require.Equal(t, "-7", plural.Table{}.Resolve("en", -7))

		onlyFew := plural.Table{Forms: map[string]string{"few": "F"}}
		require.Equal(t, "2", onlyFew.Resolve("en", 2))
	})
}

func BenchmarkTableResolve(b *testing.B) {
	table := plural.Table{Forms: map[string]string{
		"0":     "none",
		"2-5":   "a few",
		"one":   "one item",
		"other": "{{count}} items",
	}}

	for b.Loop() {
		_ = table.Resolve("en", 7)
	}
}
