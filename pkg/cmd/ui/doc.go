/*
Package ui provides a thin abstraction over user output (typically,
a tty device).
*/
package ui
