package vkit

import (
	"context"

	"github.com/dmitrymomot/vkit/pkg/methods"
	"github.com/dmitrymomot/vkit/pkg/rules"
)

var groupsAddCallbackServerRules = rules.Declaration{Required: []string{"url", "title", "secret_key"}}

// GroupsGetCallbackConfirmationCode fetches the confirmation code the
// platform expects a callback server to answer with. The community id is
// derived from the configured owner id.
func (c *Client) GroupsGetCallbackConfirmationCode(ctx context.Context, params rules.Params) (Response, error) {
	return c.Call(ctx, methods.GroupsGetCallbackConfirmationCode, c.withGroupID(params))
}

// GroupsAddCallbackServer registers a callback server for the community.
// Requires "url", "title" and "secret_key".
func (c *Client) GroupsAddCallbackServer(ctx context.Context, params rules.Params) (Response, error) {
	op := rules.Guard(groupsAddCallbackServerRules, func(ctx context.Context, p rules.Params) (Response, error) {
		return c.Call(ctx, methods.GroupsAddCallbackServer, c.withGroupID(p))
	})
	return op(ctx, params)
}

// GroupsGetCallbackServers lists the community's registered callback servers.
func (c *Client) GroupsGetCallbackServers(ctx context.Context, params rules.Params) (Response, error) {
	return c.Call(ctx, methods.GroupsGetCallbackServers, c.withGroupID(params))
}

// withGroupID injects the community id without mutating the caller's map.
func (c *Client) withGroupID(params rules.Params) rules.Params {
	p := params.Clone()
	p["group_id"] = c.groupID()
	return p
}
