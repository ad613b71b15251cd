// Package rules implements the parameter admission gate used by the API
// client: every remote operation declares which request parameters it needs,
// and the declaration is checked against the actual parameters before any
// network I/O happens.
//
// # Architecture
//
// The package is built around three pieces:
//
//   - Checker: one kind of parameter-presence constraint. A checker instance
//     is created for a single validation run, inspects the parameters against
//     the slice of the declaration it recognizes, and accumulates violation
//     messages.
//   - Registry: the ordered, open set of checker constructors. The built-in
//     checkers (required parameters, alternative groups) are enumerated at
//     compile time; additional checkers can be added with Register during
//     package initialization. Registry order fixes the order of messages in
//     the aggregate, which tests may rely on.
//   - Validate / Guard: Validate runs every registered checker and
//     concatenates their violations; Guard wraps an operation so that its
//     body only executes when Validate finds nothing.
//
// Every checker always runs, even when an earlier one has already failed, so
// a rejected call reports all violated constraints at once instead of just
// the first.
//
// # Declarations
//
// A single Declaration carries the configuration for every checker variant at
// once. Each checker reads only the field it recognizes and ignores the rest,
// so extending the engine with a new constraint kind means adding a field and
// registering a constructor - call sites and the orchestration loop stay
// untouched.
//
//	var sendMessage = rules.Declaration{
//		AnyOf: [][]string{
//			{"peer_ids", "peer_id", "user_id"},
//			{"message", "attachment"},
//		},
//	}
//
// An empty or absent field means the corresponding checker does not apply to
// the call and contributes no violations.
//
// # Usage
//
//	op := rules.Guard(sendMessage, func(ctx context.Context, p rules.Params) (Response, error) {
//		return client.Call(ctx, methods.MessagesSend, p)
//	})
//
//	resp, err := op(ctx, rules.Params{"peer_id": 1, "message": "hi"})
//	if verr := new(rules.Error); errors.As(err, &verr) {
//		// verr.Violations lists every unmet constraint; the wrapped
//		// function body never ran.
//	}
//
// Validation is a pure, synchronous computation over in-memory data: no I/O,
// no shared state between runs, fresh checker instances on every invocation.
package rules
