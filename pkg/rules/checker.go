package rules

import "net/http"

// Params holds the parameters supplied for one API call, keyed by parameter
// name. The engine only inspects name presence; values travel through to the
// transport untouched.
type Params map[string]any

// Has reports whether a parameter with the given name was supplied.
func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Clone returns a shallow copy of the parameter set. Operations that inject
// parameters after validation use it to avoid mutating the caller's map.
func (p Params) Clone() Params {
	cp := make(Params, len(p))
	for k, v := range p {
		cp[k] = v
	}
	return cp
}

// Declaration carries the requirement configuration for one operation. A
// single declaration holds the fields of every checker variant; each checker
// reads only the field it recognizes and ignores the rest.
type Declaration struct {
	// Required lists parameter names that must all be present.
	Required []string
	// AnyOf lists groups of parameter names. At least one member of each
	// group must be present.
	AnyOf [][]string
}

// Checker is a single parameter-presence constraint. An instance is bound to
// one validation run: construct it, call Check once, read the result,
// discard it.
type Checker interface {
	// Check inspects the parameters and returns every violation found, in
	// declaration order. A nil result means the checker's declaration field
	// was empty and the constraint does not apply to this call; callers
	// treat that the same as a run with zero violations.
	Check() []string

	// ErrorStatusCode is the HTTP-style severity attached to this checker's
	// violations. It is not yet surfaced in the aggregate verdict.
	ErrorStatusCode() int
}

// Constructor builds a checker instance for a single validation run.
type Constructor func(params Params, decl Declaration) Checker

// accumulator carries the per-run state shared by all checkers: the
// parameter set under inspection and the ordered violation list.
type accumulator struct {
	params     Params
	violations []string
	statusCode int
}

func newAccumulator(params Params) accumulator {
	return accumulator{params: params, statusCode: http.StatusBadRequest}
}

// record appends one violation message, preserving insertion order.
func (a *accumulator) record(msg string) {
	a.violations = append(a.violations, msg)
}

func (a *accumulator) ErrorStatusCode() int {
	return a.statusCode
}
