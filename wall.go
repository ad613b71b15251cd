package vkit

import (
	"context"

	"github.com/dmitrymomot/vkit/pkg/methods"
	"github.com/dmitrymomot/vkit/pkg/rules"
)

// Requirement declarations for the wall namespace, bound once at definition
// and enforced on every invocation.
var (
	wallPostRules          = rules.Declaration{AnyOf: [][]string{{"message", "attachments"}}}
	wallDeleteRules        = rules.Declaration{Required: []string{"post_id"}}
	wallGetCommentRules    = rules.Declaration{Required: []string{"post_id"}}
	wallGetCommentsRules   = rules.Declaration{AnyOf: [][]string{{"post_id", "comment_id"}}}
	wallCreateCommentRules = rules.Declaration{Required: []string{"post_id"}}
)

// WallGet fetches posts from the owner's wall. See
// https://dev.vk.com/method/wall.get for supported parameters.
func (c *Client) WallGet(ctx context.Context, params rules.Params) (Response, error) {
	return c.Call(ctx, methods.WallGet, params)
}

// WallPost publishes a post on the owner's wall. At least one of "message"
// or "attachments" must be supplied.
func (c *Client) WallPost(ctx context.Context, params rules.Params) (Response, error) {
	return rules.Guard(wallPostRules, c.operation(methods.WallPost))(ctx, params)
}

// WallDelete removes a post. Requires "post_id".
func (c *Client) WallDelete(ctx context.Context, params rules.Params) (Response, error) {
	return rules.Guard(wallDeleteRules, c.operation(methods.WallDelete))(ctx, params)
}

// WallGetComment fetches a single comment. Requires "post_id".
func (c *Client) WallGetComment(ctx context.Context, params rules.Params) (Response, error) {
	return rules.Guard(wallGetCommentRules, c.operation(methods.WallGetComment))(ctx, params)
}

// WallGetComments fetches comments for a post or a comment thread. At least
// one of "post_id" or "comment_id" must be supplied.
func (c *Client) WallGetComments(ctx context.Context, params rules.Params) (Response, error) {
	return rules.Guard(wallGetCommentsRules, c.operation(methods.WallGetComments))(ctx, params)
}

// WallCreateComment adds a comment to a post. Requires "post_id".
func (c *Client) WallCreateComment(ctx context.Context, params rules.Params) (Response, error) {
	return rules.Guard(wallCreateCommentRules, c.operation(methods.WallCreateComment))(ctx, params)
}
