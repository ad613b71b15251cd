package vkit

import (
	"context"

	"github.com/dmitrymomot/vkit/pkg/methods"
	"github.com/dmitrymomot/vkit/pkg/rules"
)

var usersGetRules = rules.Declaration{Required: []string{"user_ids"}}

// UsersGet fetches profile information for specific users. Requires
// "user_ids", a comma-separated list of user identifiers.
func (c *Client) UsersGet(ctx context.Context, params rules.Params) (Response, error) {
	return rules.Guard(usersGetRules, c.operation(methods.UsersGet))(ctx, params)
}
