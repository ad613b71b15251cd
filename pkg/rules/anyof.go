package rules

import (
	"fmt"
	"strings"
)

// anyOfChecker enforces Declaration.AnyOf: for every group of alternative
// parameter names, at least one member must be present. A group with no
// member present yields exactly one violation naming the whole group.
type anyOfChecker struct {
	accumulator
	groups [][]string
}

func newAnyOfChecker(params Params, decl Declaration) Checker {
	return &anyOfChecker{
		accumulator: newAccumulator(params),
		groups:      decl.AnyOf,
	}
}

func (c *anyOfChecker) Check() []string {
	if len(c.groups) == 0 {
		return nil
	}
	for _, group := range c.groups {
		if !c.checkParam(group) {
			c.record(fmt.Sprintf("missing at least one of parameters %s", strings.Join(group, ", ")))
		}
	}
	return c.violations
}

func (c *anyOfChecker) checkParam(group []string) bool {
	for _, name := range group {
		if c.params.Has(name) {
			return true
		}
	}
	return false
}
