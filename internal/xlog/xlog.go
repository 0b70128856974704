/*
Package xlog prints the messages of a command line tool. It wraps the
standard log package with functions that take the logger as an argument
and accept nil. A nil logger prints nothing, which is how quiet mode
works: instead of guarding every print with a flag check, the tool
drops the logger.

The Logger interface is satisfied by the log.Logger type.
*/
package xlog

import "fmt"

// Logger is the interface the printing functions require. The
// log.Logger type supports this interface.
type Logger interface {
	Output(calldepth int, s string) error
}

// Print outputs the arguments using the logger. If the logger is nil
// nothing will be printed.
func Print(l Logger, v ...any) {
	if l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf prints the arguments using the format string. If the logger is
// nil nothing will be printed.
func Printf(l Logger, format string, v ...any) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println prints the arguments and adds a newline. If the logger is nil
// nothing will be printed.
func Println(l Logger, v ...any) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}
