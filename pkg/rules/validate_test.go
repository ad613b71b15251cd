package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/vkit/pkg/rules"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("empty declaration admits any parameter set", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, rules.Validate(rules.Params{}, rules.Declaration{}))
		assert.Empty(t, rules.Validate(rules.Params{"anything": 1}, rules.Declaration{}))
	})

	t.Run("required violations precede group violations", func(t *testing.T) {
		t.Parallel()

		violations := rules.Validate(rules.Params{}, rules.Declaration{
			Required: []string{"owner_id", "post_id"},
			AnyOf:    [][]string{{"message", "attachments"}},
		})

		assert.Equal(t, []string{
			"missing required parameter owner_id",
			"missing required parameter post_id",
			"missing at least one of parameters message, attachments",
		}, violations)
	})

	t.Run("all checkers run even after earlier failures", func(t *testing.T) {
		t.Parallel()

		violations := rules.Validate(rules.Params{}, rules.Declaration{
			Required: []string{"post_id"},
			AnyOf:    [][]string{{"peer_id", "user_id"}, {"message", "attachment"}},
		})

		// One violation per unmet constraint, not just the first.
		assert.Len(t, violations, 3)
	})

	t.Run("repeated runs yield identical aggregates", func(t *testing.T) {
		t.Parallel()

		params := rules.Params{"server": "srv"}
		decl := rules.Declaration{
			Required: []string{"group_id", "photo"},
			AnyOf:    [][]string{{"message", "attachment"}},
		}

		first := rules.Validate(params, decl)
		second := rules.Validate(params, decl)

		assert.Equal(t, first, second)
		assert.Len(t, second, 3)
	})

	t.Run("validation leaves the parameter set untouched", func(t *testing.T) {
		t.Parallel()

		params := rules.Params{"message": "hi"}
		rules.Validate(params, rules.Declaration{
			Required: []string{"post_id"},
			AnyOf:    [][]string{{"peer_id", "user_id"}},
		})

		assert.Equal(t, rules.Params{"message": "hi"}, params)
	})
}

func TestRegister(t *testing.T) {
	t.Run("nil constructor is ignored", func(t *testing.T) {
		rules.Register(nil)

		violations := rules.Validate(rules.Params{}, rules.Declaration{
			Required: []string{"post_id"},
		})
		assert.Equal(t, []string{"missing required parameter post_id"}, violations)
	})
}

func TestParams(t *testing.T) {
	t.Parallel()

	t.Run("Has reports name presence only", func(t *testing.T) {
		t.Parallel()

		p := rules.Params{"message": "", "count": 0}
		assert.True(t, p.Has("message"))
		assert.True(t, p.Has("count"))
		assert.False(t, p.Has("attachments"))
	})

	t.Run("Clone is independent of the original", func(t *testing.T) {
		t.Parallel()

		p := rules.Params{"message": "hi"}
		cp := p.Clone()
		cp["random_id"] = 7

		assert.False(t, p.Has("random_id"))
		assert.True(t, cp.Has("message"))
	})
}
