// Package errors implements the structured runtime-error taxonomy and
// its exit-code mapping: each classified error carries a numeric code, a
// message, and (when relevant) the receiver class and selector involved,
// so a caller can report or re-render it without extra bookkeeping. AST
// nodes carry no source position, so unlike a typical interpreter's
// error type this one carries none either - positions are a front-end
// concern this core never sees.
package errors

import "fmt"

// Code is one of the six classified runtime/semantic error codes.
type Code int

const (
	// CodeMissingMainRun is raised from the program-entry routine when
	// Main.run is missing or takes parameters.
	CodeMissingMainRun Code = 31
	// CodeUndefinedVariable is raised reading a name not bound in the
	// current frame.
	CodeUndefinedVariable Code = 32
	// CodeAssignToParameter is raised writing a name that is a parameter.
	CodeAssignToParameter Code = 34
	// CodeDoesNotUnderstand is raised when the dispatcher's precedence
	// ladder exhausts without a match.
	CodeDoesNotUnderstand Code = 51
	// CodeValueError is raised for a wrong argument type in a built-in,
	// or a zero divisor in divBy:.
	CodeValueError Code = 53
	// CodeInternal is raised for invariant violations: an empty frame
	// stack popped, a malformed AST the parser should have rejected, or
	// an unexpected native return type.
	CodeInternal Code = 99
)

func (c Code) String() string {
	switch c {
	case CodeMissingMainRun:
		return "missing Main.run"
	case CodeUndefinedVariable:
		return "undefined variable"
	case CodeAssignToParameter:
		return "assign to parameter"
	case CodeDoesNotUnderstand:
		return "does not understand"
	case CodeValueError:
		return "value error"
	case CodeInternal:
		return "internal error"
	default:
		return fmt.Sprintf("error %d", int(c))
	}
}

// RuntimeError is a classified SOL25 runtime/semantic error. It carries
// enough context (receiver class + selector) to reproduce a
// do-not-understand message without the caller re-deriving it.
type RuntimeError struct {
	Code     Code
	Message  string
	Receiver string // dynamic class name of the receiver, when relevant
	Selector string // selector involved, when relevant
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, int(e.Code), e.Message)
}

// ExitCode returns the process exit code this error maps to: the numeric
// error code itself. A nil error maps to 0 by convention at the call
// site, not here.
func (e *RuntimeError) ExitCode() int {
	return int(e.Code)
}

// New builds a RuntimeError with no receiver/selector context.
func New(code Code, format string, args ...any) *RuntimeError {
	return &RuntimeError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// DoesNotUnderstand builds the code-51 error for an exhausted dispatch
// ladder.
func DoesNotUnderstand(receiverClass, selector string) *RuntimeError {
	return &RuntimeError{
		Code:     CodeDoesNotUnderstand,
		Message:  fmt.Sprintf("%s does not understand %s", receiverClass, selector),
		Receiver: receiverClass,
		Selector: selector,
	}
}

// UndefinedVariable builds the code-32 error for reading an unbound name.
func UndefinedVariable(name string) *RuntimeError {
	return &RuntimeError{Code: CodeUndefinedVariable, Message: fmt.Sprintf("undefined variable %q", name)}
}

// AssignToParameter builds the code-34 error for writing a parameter name.
func AssignToParameter(name string) *RuntimeError {
	return &RuntimeError{Code: CodeAssignToParameter, Message: fmt.Sprintf("cannot assign to parameter %q", name)}
}

// ValueError builds the code-53 error for a built-in type/argument error.
func ValueError(format string, args ...any) *RuntimeError {
	return &RuntimeError{Code: CodeValueError, Message: fmt.Sprintf(format, args...)}
}

// Internal builds the code-99 error for an invariant violation.
func Internal(format string, args ...any) *RuntimeError {
	return &RuntimeError{Code: CodeInternal, Message: fmt.Sprintf(format, args...)}
}

// MissingMainRun builds the code-31 startup error.
func MissingMainRun(reason string) *RuntimeError {
	return &RuntimeError{Code: CodeMissingMainRun, Message: "Main.run: " + reason}
}
