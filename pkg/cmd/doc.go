/*
Package cmd holds the wordfreq command tree: counting the words of text files
and running fuzzy lookups against them.
*/
package cmd
