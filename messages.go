package vkit

import (
	"context"
	"math"
	"math/rand/v2"

	"github.com/dmitrymomot/vkit/pkg/methods"
	"github.com/dmitrymomot/vkit/pkg/rules"
)

var (
	messagesGetHistoryRules = rules.Declaration{AnyOf: [][]string{{"user_id", "peer_id"}}}
	messagesSendRules       = rules.Declaration{AnyOf: [][]string{
		{"peer_ids", "peer_id", "user_id"},
		{"message", "attachment"},
	}}
)

// MessagesGetConversations fetches the owner's conversations.
func (c *Client) MessagesGetConversations(ctx context.Context, params rules.Params) (Response, error) {
	return c.Call(ctx, methods.MessagesGetConversations, params)
}

// MessagesGetHistory fetches the message history of one conversation. At
// least one of "user_id" or "peer_id" must be supplied.
func (c *Client) MessagesGetHistory(ctx context.Context, params rules.Params) (Response, error) {
	return rules.Guard(messagesGetHistoryRules, c.operation(methods.MessagesGetHistory))(ctx, params)
}

// MessagesSend sends a message. A recipient ("peer_ids", "peer_id" or
// "user_id") and content ("message" or "attachment") are both required. The
// platform's idempotency parameter "random_id" is injected after validation
// unless the caller supplied one; the caller's map is never mutated.
func (c *Client) MessagesSend(ctx context.Context, params rules.Params) (Response, error) {
	op := rules.Guard(messagesSendRules, func(ctx context.Context, p rules.Params) (Response, error) {
		p = p.Clone()
		if !p.Has("random_id") {
			p["random_id"] = randomID()
		}
		return c.Call(ctx, methods.MessagesSend, p)
	})
	return op(ctx, params)
}

// randomID produces the platform's message deduplication id: a random
// integer in [1, 2^31-1].
func randomID() int32 {
	return rand.Int32N(math.MaxInt32) + 1
}
