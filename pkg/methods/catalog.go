package methods

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	// DefaultBaseURL is the public VK API endpoint.
	DefaultBaseURL = "https://api.vk.com/method/"
	// Version is the API version sent with every request as the "v" parameter.
	Version = "5.131"
)

// Method names one remote operation of the platform API.
type Method string

const (
	WallCreateComment Method = "wall.createComment"
	WallGetComment    Method = "wall.getComment"
	WallGetComments   Method = "wall.getComments"
	WallGetLikes      Method = "wall.getLikes"
	WallGetReposts    Method = "wall.getReposts"
	WallGet           Method = "wall.get"
	WallPost          Method = "wall.post"
	WallDelete        Method = "wall.delete"

	MessagesGetConversations Method = "messages.getConversations"
	MessagesGetHistory       Method = "messages.getHistory"
	MessagesSend             Method = "messages.send"

	UsersGet Method = "users.get"

	PhotosGetWallUploadServer Method = "photos.getWallUploadServer"
	PhotosSaveWallPhoto       Method = "photos.saveWallPhoto"
	VideoSave                 Method = "video.save"

	GroupsGetCallbackConfirmationCode Method = "groups.getCallbackConfirmationCode"
	GroupsAddCallbackServer           Method = "groups.addCallbackServer"
	GroupsGetCallbackServers          Method = "groups.getCallbackServers"
)

// verbs binds every cataloged operation to its HTTP verb.
var verbs = map[Method]string{
	WallCreateComment: http.MethodPost,
	WallGetComment:    http.MethodGet,
	WallGetComments:   http.MethodGet,
	WallGetLikes:      http.MethodGet,
	WallGetReposts:    http.MethodGet,
	WallGet:           http.MethodGet,
	WallPost:          http.MethodPost,
	WallDelete:        http.MethodPost,

	MessagesGetConversations: http.MethodGet,
	MessagesGetHistory:       http.MethodGet,
	MessagesSend:             http.MethodPost,

	UsersGet: http.MethodGet,

	PhotosGetWallUploadServer: http.MethodPost,
	PhotosSaveWallPhoto:       http.MethodPost,
	VideoSave:                 http.MethodPost,

	GroupsGetCallbackConfirmationCode: http.MethodGet,
	GroupsAddCallbackServer:           http.MethodPost,
	GroupsGetCallbackServers:          http.MethodGet,
}

// Has reports whether the operation is in the catalog.
func Has(m Method) bool {
	_, ok := verbs[m]
	return ok
}

// Verb returns the HTTP verb bound to the operation. It returns
// ErrUnknownMethod for operations outside the catalog.
func (m Method) Verb() (string, error) {
	verb, ok := verbs[m]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownMethod, m)
	}
	return verb, nil
}

// GroupScoped reports whether the operation belongs to the messages or
// groups namespace and must therefore be authorized with the community
// token rather than the user token.
func (m Method) GroupScoped() bool {
	return strings.HasPrefix(string(m), "messages.") || strings.HasPrefix(string(m), "groups.")
}

// URL builds the request URL for the operation with the given query
// parameters. baseURL falls back to DefaultBaseURL when empty.
func URL(baseURL string, m Method, params url.Values) (string, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	u := base.JoinPath(string(m))
	u.RawQuery = params.Encode()
	return u.String(), nil
}
