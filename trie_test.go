package trie

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert(t *testing.T) {
	t.Run("repeated word keeps one node per rune", func(t *testing.T) {
		tr := New()
		tr.Insert("bat", "bat", "bat")
		assert.Equal(t, 3, tr.Count("bat"))
		assert.Equal(t, 1, tr.Len())
		assert.Equal(t, 3, tr.NodeCount())
	})

	t.Run("shared prefixes", func(t *testing.T) {
		tr := New()
		tr.Insert("bat", "bath", "cat", "bat")
		// b ba bat bath c ca cat
		assert.Equal(t, 7, tr.NodeCount())
		assert.Equal(t, 3, tr.Len())
		assert.Equal(t, 2, tr.Count("bat"))
		assert.Equal(t, 1, tr.Count("bath"))
		assert.Equal(t, 0, tr.Count("ba"))
		assert.False(t, tr.Contains("ba"))
		assert.False(t, tr.Contains("batt"))
	})

	t.Run("empty word is counted on the root", func(t *testing.T) {
		tr := New()
		tr.Insert("")
		tr.Insert("")
		assert.Equal(t, 2, tr.Count(""))
		assert.True(t, tr.Contains(""))
		assert.Equal(t, 1, tr.Len())
		assert.Equal(t, 0, tr.NodeCount())
		assert.Equal(t, []WordCount{{Word: "", Count: 2}}, tr.WordCounts())
	})

	t.Run("runes", func(t *testing.T) {
		tr := New()
		tr.Insert("naïve", "naive")
		assert.Equal(t, 1, tr.Count("naïve"))
		assert.Equal(t, 1, tr.Count("naive"))
		// n na nai naiv naive naï naïv naïve
		assert.Equal(t, 8, tr.NodeCount())
	})
}

func TestWordCounts(t *testing.T) {
	t.Run("empty trie", func(t *testing.T) {
		counts := New().WordCounts()
		assert.NotNil(t, counts)
		assert.Empty(t, counts)
	})

	t.Run("counts", func(t *testing.T) {
		tr := New()
		tr.Insert("bat", "bat", "cat")
		assert.Equal(t, []WordCount{{"bat", 2}, {"cat", 1}}, tr.WordCounts())
	})

	t.Run("sorted regardless of insertion order", func(t *testing.T) {
		tr := New()
		tr.Insert("pear", "apple", "peach", "", "app", "zebra", "pea", "apple")
		assert.Equal(t, []WordCount{
			{"", 1},
			{"app", 1},
			{"apple", 2},
			{"pea", 1},
			{"peach", 1},
			{"pear", 1},
			{"zebra", 1},
		}, tr.WordCounts())
	})

	t.Run("only inserted paths", func(t *testing.T) {
		tr := New()
		tr.Insert("bath")
		assert.Equal(t, []WordCount{{"bath", 1}}, tr.WordCounts())
	})

	t.Run("with prefix", func(t *testing.T) {
		tr := New()
		tr.Insert("bat", "bath", "cat", "b")
		assert.Equal(t, []WordCount{{"bat", 1}, {"bath", 1}}, tr.WordCountsWithPrefix("ba"))
		assert.Equal(t, []WordCount{{"b", 1}, {"bat", 1}, {"bath", 1}}, tr.WordCountsWithPrefix("b"))
		assert.Equal(t, tr.WordCounts(), tr.WordCountsWithPrefix(""))
		assert.Empty(t, tr.WordCountsWithPrefix("x"))
		assert.NotNil(t, tr.WordCountsWithPrefix("x"))
	})
}

func TestFuzzySearch(t *testing.T) {
	t.Run("exact match with no distance", func(t *testing.T) {
		tr := New()
		tr.Insert("cat")
		results, err := tr.FuzzySearch("cat", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"cat"}, results)
	})

	t.Run("candidates keep one entry per branch", func(t *testing.T) {
		tr := New()
		tr.Insert("cat")
		candidates, err := tr.FuzzyCandidates("cat", 0)
		require.NoError(t, err)
		// extend or substitute at each of the three levels
		expected := make([]string, 8)
		for i := range expected {
			expected[i] = "cat"
		}
		assert.Equal(t, expected, candidates)
	})

	t.Run("over-matches within the length bound", func(t *testing.T) {
		tr := New()
		tr.Insert("hello", "help", "world", "hi")
		results, err := tr.FuzzySearch("hello", 1)
		require.NoError(t, err)
		assert.Contains(t, results, "hello")
		assert.Contains(t, results, "help")
		assert.Contains(t, results, "world")
		// built from "hello" by skipping a rune
		assert.Contains(t, results, "helo")
		assert.Contains(t, results, "hell")
		assert.NotContains(t, results, "hi")
	})

	t.Run("skipped runes with no distance", func(t *testing.T) {
		tr := New()
		tr.Insert("cart")
		results, err := tr.FuzzySearch("cat", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"art", "car", "cat", "crt"}, results)
	})

	t.Run("only lengths are compared", func(t *testing.T) {
		tr := New()
		tr.Insert("dog", "do")
		results, err := tr.FuzzySearch("cat", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"dog"}, results)
	})

	t.Run("longer words are pruned", func(t *testing.T) {
		tr := New()
		tr.Insert("catalogue")
		candidates, err := tr.FuzzyCandidates("cat", 1)
		require.NoError(t, err)
		for _, candidate := range candidates {
			assert.LessOrEqual(t, len(candidate), 4)
			assert.GreaterOrEqual(t, len(candidate), 2)
		}
	})

	t.Run("empty query on empty word", func(t *testing.T) {
		tr := New()
		tr.Insert("")
		candidates, err := tr.FuzzyCandidates("", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{""}, candidates)
		results, err := tr.FuzzySearch("", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{""}, results)
	})

	t.Run("empty query skips substitution", func(t *testing.T) {
		tr := New()
		tr.Insert("a", "ab")
		candidates, err := tr.FuzzyCandidates("", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"", ""}, candidates)
	})

	t.Run("substitution stops when the query runs out", func(t *testing.T) {
		tr := New()
		tr.Insert("abc")
		candidates, err := tr.FuzzyCandidates("a", 2)
		require.NoError(t, err)
		n := 0
		for _, candidate := range candidates {
			if candidate == "abc" {
				n++
			}
		}
		// extend everywhere, or substitute once at one of three levels
		assert.Equal(t, 4, n)
	})

	t.Run("negative distance", func(t *testing.T) {
		tr := New()
		tr.Insert("cat", "")
		results, err := tr.FuzzySearch("cat", -1)
		require.NoError(t, err)
		assert.Empty(t, results)
		candidates, err := tr.FuzzyCandidates("", -3)
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("empty trie", func(t *testing.T) {
		results, err := New().FuzzySearch("anything", 3)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("lengths count runes", func(t *testing.T) {
		tr := New()
		tr.Insert("naïve")
		results, err := tr.FuzzySearch("naive", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"naïve"}, results)
	})

	t.Run("deterministic order", func(t *testing.T) {
		tr := New()
		tr.Insert("stop", "tops", "spot", "pots", "post", "opts")
		first, err := tr.FuzzyCandidates("spot", 1)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := tr.FuzzyCandidates("spot", 1)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})
}

func TestFuzzySearchBudget(t *testing.T) {
	t.Run("depth ceiling", func(t *testing.T) {
		tr := New().WithMaxDepth(2)
		tr.Insert("abc")
		_, err := tr.FuzzySearch("abc", 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrSearchBudgetExceeded))

		tr.WithoutMaxDepth()
		results, err := tr.FuzzySearch("abc", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"abc"}, results)
	})

	t.Run("default depth ceiling", func(t *testing.T) {
		tr := New()
		tr.Insert(strings.Repeat("a", DefaultMaxDepth+1))
		_, err := tr.FuzzyCandidates("", 0)
		assert.ErrorIs(t, err, ErrSearchBudgetExceeded)
	})

	t.Run("visit ceiling", func(t *testing.T) {
		tr := New().WithMaxVisits(1)
		tr.Insert("a")
		_, err := tr.FuzzyCandidates("a", 0)
		assert.ErrorIs(t, err, ErrSearchBudgetExceeded)

		tr.WithoutMaxVisits()
		candidates, err := tr.FuzzyCandidates("a", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "a"}, candidates)
	})

	t.Run("negative ceilings mean none", func(t *testing.T) {
		tr := New().WithMaxDepth(-1).WithMaxVisits(-1)
		tr.Insert("abc")
		_, err := tr.FuzzySearch("abc", 0)
		assert.NoError(t, err)
	})
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"", "a", "b"}, Dedupe([]string{"b", "a", "b", "", "a"}))
	assert.Empty(t, Dedupe(nil))
}
