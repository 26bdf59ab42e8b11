package evaluator

import (
	"fmt"
	"strings"

	"github.com/funvibe/golox/internal/diagnostics"
)

// ErrorKind classifies runtime errors. Each kind has a stable diagnostic code.
type ErrorKind int

const (
	InternalError ErrorKind = iota
	UndefinedVariable
	TypeMismatch
	DivisionByZero
	NotCallable
	ArityMismatch
	UndefinedProperty
	NoFields
	StackOverflow
)

var errorKindNames = [...]string{
	InternalError:     "InternalError",
	UndefinedVariable: "UndefinedVariable",
	TypeMismatch:      "TypeMismatch",
	DivisionByZero:    "DivisionByZero",
	NotCallable:       "NotCallable",
	ArityMismatch:     "ArityMismatch",
	UndefinedProperty: "UndefinedProperty",
	NoFields:          "NoFields",
	StackOverflow:     "StackOverflow",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

var errorKindCodes = [...]diagnostics.ErrorCode{
	InternalError:     diagnostics.ErrR001,
	UndefinedVariable: diagnostics.ErrR002,
	TypeMismatch:      diagnostics.ErrR003,
	DivisionByZero:    diagnostics.ErrR004,
	NotCallable:       diagnostics.ErrR005,
	ArityMismatch:     diagnostics.ErrR006,
	UndefinedProperty: diagnostics.ErrR007,
	NoFields:          diagnostics.ErrR008,
	StackOverflow:     diagnostics.ErrR009,
}

func (k ErrorKind) Code() diagnostics.ErrorCode {
	if int(k) < len(errorKindCodes) {
		return errorKindCodes[k]
	}
	return diagnostics.ErrR001
}

// Error is a runtime error. It aborts the run: every statement and call
// returns it unchanged to its caller.
type Error struct {
	Kind       ErrorKind
	Message    string
	Line       int
	Column     int
	StackTrace []StackFrame
}

// StackFrame for error stack traces
type StackFrame struct {
	Name   string
	File   string
	Line   int
	Column int
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string {
	var result string
	if e.Line > 0 {
		result = fmt.Sprintf("ERROR at %d:%d: %s", e.Line, e.Column, e.Message)
	} else {
		result = "ERROR: " + e.Message
	}
	if trace := e.FormatStackTrace(""); trace != "" {
		result += "\n" + trace
	}
	return result
}

// Error makes *Error usable as a Go error outside the evaluator.
func (e *Error) Error() string { return e.Message }

// maxTraceFrames caps the frames shown for deep stacks, mostly overflows.
const maxTraceFrames = 20

// FormatStackTrace lists the call chain innermost first. Frames without a
// file use defaultFile.
func (e *Error) FormatStackTrace(defaultFile string) string {
	if len(e.StackTrace) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Stack trace:")
	shown := 0
	for i := len(e.StackTrace) - 1; i >= 0; i-- {
		if shown == maxTraceFrames {
			fmt.Fprintf(&sb, "\n  ... %d more", i+1)
			break
		}
		shown++
		frame := e.StackTrace[i]
		file := frame.File
		if file == "" {
			file = defaultFile
		}
		if file == "" {
			file = "<input>"
		}
		fmt.Fprintf(&sb, "\n  at %s:%d (called %s)", file, frame.Line, frame.Name)
	}
	return sb.String()
}

func newError(kind ErrorKind, format string, a ...interface{}) *Error {
	msg := format
	if len(a) > 0 {
		msg = fmt.Sprintf(format, a...)
	}
	return &Error{Kind: kind, Message: msg}
}

func isError(obj Object) bool {
	if obj != nil {
		return obj.Type() == ERROR_OBJ
	}
	return false
}

func unwrapReturnValue(obj Object) Object {
	if returnValue, ok := obj.(*ReturnValue); ok {
		return returnValue.Value
	}
	return obj
}

// CallFrame represents a single frame in the call stack
type CallFrame struct {
	Name   string // Function name
	File   string // Source file
	Line   int    // Line of the call site
	Column int
}

// PushCall adds a call frame to the stack. It fails with a stack overflow
// error instead once MaxCallDepth frames are active.
func (e *Evaluator) PushCall(name string, line, column int) *Error {
	if e.MaxCallDepth > 0 && len(e.CallStack) >= e.MaxCallDepth {
		return newError(StackOverflow, "Stack overflow.")
	}
	e.CallStack = append(e.CallStack, CallFrame{
		Name:   name,
		File:   e.CurrentFile,
		Line:   line,
		Column: column,
	})
	return nil
}

// PopCall removes the top call frame
func (e *Evaluator) PopCall() {
	if len(e.CallStack) > 0 {
		e.CallStack = e.CallStack[:len(e.CallStack)-1]
	}
}

// captureStack copies the current call stack into err once.
func (e *Evaluator) captureStack(err *Error) {
	if err.StackTrace != nil || len(e.CallStack) == 0 {
		return
	}
	err.StackTrace = make([]StackFrame, len(e.CallStack))
	for i, frame := range e.CallStack {
		err.StackTrace[i] = StackFrame{
			Name:   frame.Name,
			File:   frame.File,
			Line:   frame.Line,
			Column: frame.Column,
		}
	}
}
