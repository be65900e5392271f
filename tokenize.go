package trie

import (
	"bufio"
	"io"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// newNormaliser strips diacritics, lower-cases and drops every rune that is not a letter.
// For example "Jürgen's" becomes "jurgens".
func newNormaliser() transform.Transformer {
	return transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
		cases.Lower(language.Und),
		runes.Remove(runes.NotIn(unicode.L)),
	)
}

// Normalise turns a raw token into the form words are indexed under.
// The result may be empty.
func Normalise(token string) string {
	normal, _, err := transform.String(newNormaliser(), token)
	if err != nil {
		return ""
	}
	return normal
}

// Tokenize splits r on white space and normalises every token, dropping the
// ones that normalise to the empty string.
func Tokenize(r io.Reader) ([]string, error) {
	tokens := []string{}
	err := scanTokens(r, func(token string) {
		tokens = append(tokens, token)
	})
	return tokens, err
}

// InsertFrom tokenizes r and inserts every token, returning how many were inserted.
func (t *Trie) InsertFrom(r io.Reader) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	inserted := 0
	err := scanTokens(r, func(token string) {
		t.insertInternal(token)
		inserted++
	})
	return inserted, err
}

func scanTokens(r io.Reader, fn func(string)) error {
	transformer := newNormaliser()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		normal, _, err := transform.String(transformer, scanner.Text())
		if err != nil || normal == "" {
			continue
		}
		fn(normal)
	}
	return scanner.Err()
}
