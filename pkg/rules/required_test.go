package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/vkit/pkg/rules"
)

func TestRequiredParams(t *testing.T) {
	t.Parallel()

	t.Run("reports every missing parameter", func(t *testing.T) {
		t.Parallel()

		violations := rules.Validate(rules.Params{}, rules.Declaration{
			Required: []string{"post_id"},
		})

		assert.Equal(t, []string{"missing required parameter post_id"}, violations)
	})

	t.Run("passes when all required parameters are present", func(t *testing.T) {
		t.Parallel()

		params := rules.Params{"group_id": 1, "server": "srv", "photo": "p", "hash": "h"}
		violations := rules.Validate(params, rules.Declaration{
			Required: []string{"group_id", "server", "photo", "hash"},
		})

		assert.Empty(t, violations)
	})

	t.Run("reports only the absent names in declaration order", func(t *testing.T) {
		t.Parallel()

		params := rules.Params{"server": "srv"}
		violations := rules.Validate(params, rules.Declaration{
			Required: []string{"group_id", "server", "photo", "hash"},
		})

		assert.Equal(t, []string{
			"missing required parameter group_id",
			"missing required parameter photo",
			"missing required parameter hash",
		}, violations)
	})

	t.Run("empty requirement list always passes", func(t *testing.T) {
		t.Parallel()

		violations := rules.Validate(rules.Params{}, rules.Declaration{Required: []string{}})
		assert.Empty(t, violations)
	})

	t.Run("parameter present with nil value counts as present", func(t *testing.T) {
		t.Parallel()

		violations := rules.Validate(rules.Params{"post_id": nil}, rules.Declaration{
			Required: []string{"post_id"},
		})

		assert.Empty(t, violations)
	})
}
