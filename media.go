package vkit

import (
	"context"

	"github.com/dmitrymomot/vkit/pkg/methods"
	"github.com/dmitrymomot/vkit/pkg/rules"
)

var (
	photosUploadServerRules = rules.Declaration{Required: []string{"group_id"}}
	photosSaveRules         = rules.Declaration{Required: []string{"group_id", "server", "photo", "hash"}}
	videoSaveRules          = rules.Declaration{Required: []string{"group_id"}}
)

// PhotosGetWallUploadServer fetches an upload URL for wall photos. Requires
// "group_id".
func (c *Client) PhotosGetWallUploadServer(ctx context.Context, params rules.Params) (Response, error) {
	return rules.Guard(photosUploadServerRules, c.operation(methods.PhotosGetWallUploadServer))(ctx, params)
}

// PhotosSaveWallPhoto saves an uploaded photo to a community wall. Requires
// "group_id", "server", "photo" and "hash", all taken from the
// PhotosGetWallUploadServer response.
func (c *Client) PhotosSaveWallPhoto(ctx context.Context, params rules.Params) (Response, error) {
	return rules.Guard(photosSaveRules, c.operation(methods.PhotosSaveWallPhoto))(ctx, params)
}

// VideoSave fetches an upload URL for a community video. Requires "group_id".
func (c *Client) VideoSave(ctx context.Context, params rules.Params) (Response, error) {
	return rules.Guard(videoSaveRules, c.operation(methods.VideoSave))(ctx, params)
}
