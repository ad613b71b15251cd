package rules

import "fmt"

// requiredChecker enforces Declaration.Required: every listed parameter name
// must be present in the call's parameter set.
type requiredChecker struct {
	accumulator
	required []string
}

func newRequiredChecker(params Params, decl Declaration) Checker {
	return &requiredChecker{
		accumulator: newAccumulator(params),
		required:    decl.Required,
	}
}

func (c *requiredChecker) Check() []string {
	if len(c.required) == 0 {
		return nil
	}
	for _, name := range c.required {
		if !c.checkParam(name) {
			c.record(fmt.Sprintf("missing required parameter %s", name))
		}
	}
	return c.violations
}

func (c *requiredChecker) checkParam(name string) bool {
	return c.params.Has(name)
}
