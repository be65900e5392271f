package ui

import (
	"io"
)

type UI interface {
	Printf(string, ...interface{})
	Debugf(string, ...interface{})
	Warnf(str string, args ...interface{})
	DebugWriter() io.Writer
}
