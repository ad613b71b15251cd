package rules

// Validate runs every registered checker against the parameter set and
// returns the concatenated violations: registry order across checkers,
// declaration order within one. Every checker runs even after an earlier one
// has failed, so the caller sees all violated constraints in a single pass.
// An empty result means the call may proceed.
func Validate(params Params, decl Declaration) []string {
	var violations []string
	for _, construct := range registry {
		if found := construct(params, decl).Check(); len(found) > 0 {
			violations = append(violations, found...)
		}
	}
	return violations
}
