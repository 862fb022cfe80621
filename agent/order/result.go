package order

import "fmt"

// Result is the outcome of a store operation. Message is always suitable for
// speaking back to the customer; OK distinguishes an applied mutation from a
// rejected one, so callers that care (tests, metrics) can branch without
// parsing text.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func (r Result) String() string {
	return r.Message
}

func applied(format string, args ...any) Result {
	return Result{OK: true, Message: fmt.Sprintf(format, args...)}
}

func rejected(format string, args ...any) Result {
	return Result{OK: false, Message: fmt.Sprintf(format, args...)}
}
