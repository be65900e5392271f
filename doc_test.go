package trie

import (
	"fmt"
	"strings"
)

func Example() {
	t := New()
	t.Insert("bat", "bat", "cat")

	for _, wc := range t.WordCounts() {
		fmt.Printf("%s: %d\n", wc.Word, wc.Count)
	}

	// Output:
	// bat: 2
	// cat: 1
}

func Example_fuzzy() {
	t := New()
	t.Insert("hello")

	results, err := t.FuzzySearch("hello", 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(results)

	// Output:
	// [ello hell hello helo hllo]
}

func Example_text() {
	t := New()
	n, err := t.InsertFrom(strings.NewReader("The cat saw the other CAT, then 42 more cats."))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(n, t.Count("the"), t.Count("cat"))

	// Output:
	// 9 2 2
}
