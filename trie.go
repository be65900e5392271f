package trie

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"unicode/utf8"
)

const (
	// DefaultMaxDepth is the deepest trie level a fuzzy search will descend to
	// before giving up with ErrSearchBudgetExceeded.
	DefaultMaxDepth = 512
	// DefaultMaxVisits is the default node-visit ceiling for a fuzzy search.
	// The search branches three ways per rune, so long words in a large
	// trie can otherwise keep it busy for a very long time.
	DefaultMaxVisits = 1 << 24
)

// ErrSearchBudgetExceeded is returned when a fuzzy search hits the configured
// depth or visit ceiling.
var ErrSearchBudgetExceeded = errors.New("search budget exceeded")

// Trie is a word-frequency index. Every inserted word is stored as a path of
// runes from the root, and the node the path ends at counts how many times
// the word was inserted.
type Trie struct {
	root *node
	mu   sync.RWMutex
	// nodes counts every node except the root.
	nodes int
	// words counts the end-of-word nodes.
	words     int
	maxDepth  int
	maxVisits int
}

// node is a node in a Trie which contains a map of runes to more node pointers.
// end and count are set together: end is true iff count > 0.
type node struct {
	children map[rune]*node
	end      bool
	count    int
}

// WordCount is a word and the number of times it was inserted.
type WordCount struct {
	Word  string
	Count int
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// New creates a new empty trie. Fuzzy searches are limited to DefaultMaxDepth
// levels and DefaultMaxVisits visited nodes.
func New() *Trie {
	t := new(Trie)
	t.root = newNode()
	t.WithMaxDepth(DefaultMaxDepth)
	t.WithMaxVisits(DefaultMaxVisits)
	return t
}

// WithMaxDepth sets the deepest trie level a fuzzy search may reach.
// A value of zero or less removes the ceiling.
func (t *Trie) WithMaxDepth(depth int) *Trie {
	if depth < 0 {
		depth = 0
	}
	t.maxDepth = depth
	return t
}

// WithoutMaxDepth lets fuzzy searches descend to any depth.
func (t *Trie) WithoutMaxDepth() *Trie {
	t.maxDepth = 0
	return t
}

// WithMaxVisits sets how many nodes a single fuzzy search may visit.
// A value of zero or less removes the ceiling.
func (t *Trie) WithMaxVisits(visits int) *Trie {
	if visits < 0 {
		visits = 0
	}
	t.maxVisits = visits
	return t
}

// WithoutMaxVisits lets fuzzy searches visit any number of nodes.
func (t *Trie) WithoutMaxVisits() *Trie {
	t.maxVisits = 0
	return t
}

// Insert adds words to the Trie. Inserting a word again increments its count.
// Words are stored as given; normalising them is up to the caller (see Normalise).
// The empty string is counted on the root.
func (t *Trie) Insert(words ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, word := range words {
		t.insertInternal(word)
	}
}

// insertInternal performs the actual insertion without locking.
func (t *Trie) insertInternal(word string) {
	current := t.root
	for _, character := range word {
		child, ok := current.children[character]
		if !ok {
			child = newNode()
			current.children[character] = child
			t.nodes++
		}
		current = child
	}
	if !current.end {
		current.end = true
		t.words++
	}
	current.count++
}

// find returns the node at the end of path, or nil.
func (t *Trie) find(path string) *node {
	current := t.root
	for _, character := range path {
		next, ok := current.children[character]
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

// Count returns how many times word was inserted.
func (t *Trie) Count(word string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if n := t.find(word); n != nil {
		return n.count
	}
	return 0
}

// Contains reports whether word was inserted at least once.
func (t *Trie) Contains(word string) bool {
	return t.Count(word) > 0
}

// Len returns the number of distinct words.
func (t *Trie) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.words
}

// NodeCount returns the number of nodes below the root, which is the number of
// distinct prefixes of the inserted words.
func (t *Trie) NodeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.nodes
}

// WordCounts returns every word with its count, sorted by word.
func (t *Trie) WordCounts() []WordCount {
	t.mu.RLock()
	defer t.mu.RUnlock()
	counts := make([]WordCount, 0, t.words)
	t.root.collectWordCounts(&counts, "")
	sortWordCounts(counts)
	return counts
}

// WordCountsWithPrefix is like WordCounts, restricted to words starting with prefix.
func (t *Trie) WordCountsWithPrefix(prefix string) []WordCount {
	t.mu.RLock()
	defer t.mu.RUnlock()
	counts := []WordCount{}
	if start := t.find(prefix); start != nil {
		start.collectWordCounts(&counts, prefix)
	}
	sortWordCounts(counts)
	return counts
}

// collectWordCounts appends the words of n and all its descendants.
// Map order is random, so callers sort the result.
func (n *node) collectWordCounts(counts *[]WordCount, word string) {
	if n.end {
		*counts = append(*counts, WordCount{Word: word, Count: n.count})
	}
	for character, child := range n.children {
		child.collectWordCounts(counts, word+string(character))
	}
}

func sortWordCounts(counts []WordCount) {
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Word < counts[j].Word
	})
}

// sortedKeys returns the child runes of n in ascending order.
func (n *node) sortedKeys() []rune {
	keys := make([]rune, 0, len(n.children))
	for character := range n.children {
		keys = append(keys, character)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// FuzzySearch returns the distinct words FuzzyCandidates finds for target,
// sorted ascending.
func (t *Trie) FuzzySearch(target string, maxDistance int) ([]string, error) {
	candidates, err := t.FuzzyCandidates(target, maxDistance)
	if err != nil {
		return nil, err
	}
	return Dedupe(candidates), nil
}

// FuzzyCandidates explores the trie from the root for words similar to target.
//
// Every child edge is followed three ways: appending its rune to the word being
// built, skipping the rune, and appending the rune while consuming one rune of
// target against one unit of budget. The last one is only taken while target
// has runes left. A branch is pruned once the built word is longer than target
// by more than maxDistance, and an end-of-word node is accepted when the built
// word's length is within maxDistance of target's. Both tests use the length
// of the whole target and the initial maxDistance, so this is a loose
// approximation of edit distance that matches more than Levenshtein would.
//
// Matches are returned in depth-first order with children visited in rune
// order. A word reached by several branches appears once per branch.
// A negative maxDistance matches nothing.
//
// The error wraps ErrSearchBudgetExceeded if the search reaches the trie's
// depth or visit ceiling.
func (t *Trie) FuzzyCandidates(target string, maxDistance int) ([]string, error) {
	results := []string{}
	if maxDistance < 0 {
		return results, nil
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	s := &searcher{
		targetLen:   utf8.RuneCountInString(target),
		maxDistance: maxDistance,
		maxDepth:    t.maxDepth,
		maxVisits:   t.maxVisits,
		results:     results,
	}
	if err := s.collect(t.root, 0, searchState{budget: maxDistance}); err != nil {
		return nil, err
	}
	return s.results, nil
}

// searchState is the per-call state of a fuzzy search. It is passed by value
// so sibling branches never share a built word.
type searchState struct {
	built    string
	builtLen int
	// remaining is the index of the first unconsumed rune of the target.
	remaining int
	budget    int
}

func (s searchState) extend(character rune) searchState {
	s.built += string(character)
	s.builtLen++
	return s
}

type searcher struct {
	targetLen   int
	maxDistance int
	maxDepth    int
	maxVisits   int
	visits      int
	results     []string
}

func (s *searcher) collect(n *node, depth int, state searchState) error {
	if n == nil || state.builtLen > s.targetLen+s.maxDistance {
		return nil
	}
	s.visits++
	if s.maxVisits > 0 && s.visits > s.maxVisits {
		return fmt.Errorf("%w: visited more than %d nodes", ErrSearchBudgetExceeded, s.maxVisits)
	}
	if s.maxDepth > 0 && depth > s.maxDepth {
		return fmt.Errorf("%w: trie deeper than %d levels", ErrSearchBudgetExceeded, s.maxDepth)
	}
	if n.end && abs(state.builtLen-s.targetLen) <= s.maxDistance {
		s.results = append(s.results, state.built)
	}
	for _, character := range n.sortedKeys() {
		child := n.children[character]
		// Extend
		if err := s.collect(child, depth+1, state.extend(character)); err != nil {
			return err
		}
		// Skip
		if err := s.collect(child, depth+1, state); err != nil {
			return err
		}
		// Substitute
		if state.remaining < s.targetLen {
			next := state.extend(character)
			next.remaining++
			next.budget--
			if err := s.collect(child, depth+1, next); err != nil {
				return err
			}
		}
	}
	return nil
}

// Dedupe returns the distinct words of words, sorted ascending.
func Dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	unique := make([]string, 0, len(words))
	for _, word := range words {
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		unique = append(unique, word)
	}
	sort.Strings(unique)
	return unique
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

