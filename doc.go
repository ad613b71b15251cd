// Package vkit is a client library for the VK social-platform API.
//
// The client exposes one method per cataloged remote operation (wall posts,
// comments, messages, media uploads, callback server management). Every
// operation declares which request parameters it needs, and the declaration
// is enforced before any network I/O: a call with missing parameters fails
// with *rules.Error listing every unmet constraint, and the request is never
// dispatched.
//
// Basic usage:
//
//	cfg, err := vkit.LoadConfig() // VK_OWNER_ID, VK_ACCESS_TOKEN, ...
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	client, err := vkit.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.WallPost(ctx, rules.Params{"message": "hello"})
//	if err != nil {
//		if rules.IsValidationError(err) {
//			// the request parameters were rejected locally
//		}
//		return err
//	}
//	// resp.Body holds the decoded payload, resp.StatusCode the upstream status
//
// # Result shape
//
// Every dispatched call resolves to a normalized Response regardless of
// outcome: a successful call carries the decoded JSON body and upstream
// status, an unknown method resolves to a synthetic 404 response without
// touching the network, and an unparseable upstream body resolves to a
// synthetic 502 response. Only transport-level failures (connection errors,
// context cancellation) and parameter validation surface as Go errors.
//
// # Tokens
//
// Access tokens are carried as oauth2.TokenSource values. Operations in the
// messages and groups namespaces are authorized with the community token
// when one is configured; everything else uses the user token. Token refresh
// and rotation are out of scope - static sources built from configuration
// are the default.
package vkit
