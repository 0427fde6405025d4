package gateway

// Result is the discriminated return value of every gateway write and
// read. The gateway never lets an error escape undiscriminated; callers
// check OK and branch on Err.Kind.
type Result[T any] struct {
	OK   bool
	Data T
	Err  *Error

	// Skipped marks a success that performed no work, e.g. completing a
	// quest that was already completed in the current window.
	Skipped bool
}

func Ok[T any](data T) Result[T] {
	return Result[T]{OK: true, Data: data}
}

func Skip[T any](data T) Result[T] {
	return Result[T]{OK: true, Data: data, Skipped: true}
}

func Fail[T any](err *Error) Result[T] {
	return Result[T]{OK: false, Err: err}
}
