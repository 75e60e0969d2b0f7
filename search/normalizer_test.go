package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBasics(t *testing.T) {
	n := NewNormalizer()

	t.Run("lowercase and trim", func(t *testing.T) {
		assert.Equal(t, "полномочия правления", n.Normalize("  Полномочия Правления  "))
	})

	t.Run("collapse whitespace", func(t *testing.T) {
		assert.Equal(t, "a b c", n.Normalize("a\t b\n\n c"))
	})

	t.Run("unify quotes", func(t *testing.T) {
		assert.Equal(t, `устав "компании"`, n.Normalize(`Устав «Компании»`))
		assert.Equal(t, `"цитата"`, n.Normalize(`„Цитата“`))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", n.Normalize("   "))
	})
}

func TestNormalizeAbbreviations(t *testing.T) {
	n := NewNormalizer()

	t.Run("whole word expansion", func(t *testing.T) {
		assert.Equal(t,
			"акционерное общество что такое комитет по назначениям и вознаграждениям",
			n.Normalize("АО что такое КНВ"))
	})

	t.Run("no expansion inside words", func(t *testing.T) {
		// "сд" occurs inside "заседание" and must not expand.
		assert.Equal(t, "заседание правления", n.Normalize("Заседание правления"))
		assert.Equal(t, "наоборот", n.Normalize("наоборот"))
	})

	t.Run("expansion at punctuation boundary", func(t *testing.T) {
		assert.Equal(t,
			"решения совета директоров (совет директоров)",
			n.Normalize("Решения совета директоров (СД)"))
	})

	t.Run("repeated abbreviation", func(t *testing.T) {
		assert.Equal(t,
			"корпоративный секретарь и снова корпоративный секретарь",
			n.Normalize("КС и снова КС"))
	})
}

func TestNormalizeIdempotent(t *testing.T) {
	n := NewNormalizer()

	queries := []string{
		"АО что такое КНВ",
		"Решения «Совета Директоров»",
		"полномочия КС при созыве СД",
	}
	for _, q := range queries {
		once := n.Normalize(q)
		assert.Equal(t, once, n.Normalize(once), "query %q", q)
	}
}

func TestNewNormalizerWithReplacements(t *testing.T) {
	t.Run("valid table", func(t *testing.T) {
		n, err := NewNormalizerWithReplacements(map[string]string{
			"гд": "генеральный директор",
		})
		require.NoError(t, err)
		assert.Equal(t, "генеральный директор компании", n.Normalize("ГД компании"))
	})

	t.Run("empty abbreviation", func(t *testing.T) {
		_, err := NewNormalizerWithReplacements(map[string]string{"": "x"})
		assert.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("empty expansion", func(t *testing.T) {
		_, err := NewNormalizerWithReplacements(map[string]string{"аб": "  "})
		assert.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("uppercase entry rejected", func(t *testing.T) {
		_, err := NewNormalizerWithReplacements(map[string]string{"АО": "акционерное общество"})
		assert.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("abbreviation inside expansion rejected", func(t *testing.T) {
		_, err := NewNormalizerWithReplacements(map[string]string{
			"со": "совет",
			"сд": "со директоров",
		})
		assert.ErrorIs(t, err, ErrConfiguration)
	})
}

func TestExpandWholeWord(t *testing.T) {
	t.Run("no match returns input", func(t *testing.T) {
		assert.Equal(t, "ничего общего", expandWholeWord("ничего общего", "ао", "x"))
	})

	t.Run("match at start and end", func(t *testing.T) {
		assert.Equal(t, "x середина x", expandWholeWord("ао середина ао", "ао", "x"))
	})

	t.Run("cyrillic letters form word boundaries", func(t *testing.T) {
		// ASCII \b would treat every Cyrillic rune as a boundary; a
		// match inside a longer Cyrillic word must be rejected.
		assert.Equal(t, "заседание", expandWholeWord("заседание", "сд", "совет директоров"))
	})
}
