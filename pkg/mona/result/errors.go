package result

import "fmt"

// FailureError reports an unwrap of the failure variant. The original
// failure payload is the cause, exposed through Unwrap so errors.Is and
// errors.As walk past it.
type FailureError struct {
	msg   string
	cause error
}

func (e *FailureError) Error() string {
	switch {
	case e.msg == "" && e.cause == nil:
		return "result: failure"
	case e.msg == "":
		return fmt.Sprintf("result: failure: %v", e.cause)
	case e.cause == nil:
		return "result: failure: " + e.msg
	default:
		return fmt.Sprintf("result: failure: %s: %v", e.msg, e.cause)
	}
}

// Message returns the message passed to OrRaise, if any.
func (e *FailureError) Message() string {
	return e.msg
}

// Unwrap returns the failure payload that caused the panic.
func (e *FailureError) Unwrap() error {
	return e.cause
}
