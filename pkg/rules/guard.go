package rules

import "context"

// Operation is a remote call taking one parameter set. T is the operation's
// result type.
type Operation[T any] func(ctx context.Context, params Params) (T, error)

// Guard binds a declaration to an operation and returns a wrapped operation
// that validates the parameters of every invocation before delegating. When
// any checker reports violations, the wrapped body never executes and the
// call fails with *Error carrying the full aggregate, so no I/O happens for
// an invalid call. Each invocation validates with fresh checker instances;
// nothing is shared between calls or between independently guarded
// operations.
func Guard[T any](decl Declaration, op Operation[T]) Operation[T] {
	return func(ctx context.Context, params Params) (T, error) {
		if violations := Validate(params, decl); len(violations) > 0 {
			var zero T
			return zero, &Error{Violations: violations}
		}
		return op(ctx, params)
	}
}
