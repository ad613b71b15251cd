package rules

// registry is the ordered set of known checker constructors. The built-in
// checkers are enumerated here; registration order is iteration order and
// fixes the order in which violations from different checkers appear in the
// aggregate, so required-parameter violations always precede
// alternative-group ones.
var registry = []Constructor{
	newRequiredChecker,
	newAnyOfChecker,
}

// Register appends a checker constructor to the registry. It is meant to be
// called from package init functions; the registry is append-only and not
// synchronized, so registering after initialization is not supported.
func Register(c Constructor) {
	if c == nil {
		return
	}
	registry = append(registry, c)
}
