/*
File    : loxgo/eval/errors.go
Package : eval
*/
package eval

import "fmt"

// RuntimeError is a fatal evaluation error. There is no local recovery:
// the first one aborts the whole program and the driver maps it to exit
// code 70 (spec.md §7).
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

func runtimeErrorf(line int, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}
