/*
Package trie provides a word-frequency index backed by a prefix tree.
It counts repeated insertions of each word, lists the words with their counts
in sorted order, and offers a loose, budget-bounded fuzzy lookup.
*/
package trie
