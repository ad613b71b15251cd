package methods_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vkit/pkg/methods"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	t.Run("known operations carry their verb", func(t *testing.T) {
		t.Parallel()

		verb, err := methods.WallGet.Verb()
		require.NoError(t, err)
		assert.Equal(t, http.MethodGet, verb)

		verb, err = methods.WallPost.Verb()
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, verb)
	})

	t.Run("unknown operation is rejected", func(t *testing.T) {
		t.Parallel()

		assert.False(t, methods.Has(methods.Method("wall.fly")))

		_, err := methods.Method("wall.fly").Verb()
		assert.ErrorIs(t, err, methods.ErrUnknownMethod)
	})

	t.Run("messages and groups operations are group scoped", func(t *testing.T) {
		t.Parallel()

		assert.True(t, methods.MessagesSend.GroupScoped())
		assert.True(t, methods.GroupsGetCallbackServers.GroupScoped())
		assert.False(t, methods.WallPost.GroupScoped())
		assert.False(t, methods.UsersGet.GroupScoped())
	})
}

func TestURL(t *testing.T) {
	t.Parallel()

	t.Run("joins base, method and encoded query", func(t *testing.T) {
		t.Parallel()

		params := url.Values{}
		params.Set("owner_id", "-1")
		params.Set("message", "hello world")

		got, err := methods.URL("https://api.vk.com/method/", methods.WallPost, params)
		require.NoError(t, err)

		u, err := url.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, "/method/wall.post", u.Path)
		assert.Equal(t, "-1", u.Query().Get("owner_id"))
		assert.Equal(t, "hello world", u.Query().Get("message"))
	})

	t.Run("empty base falls back to the public endpoint", func(t *testing.T) {
		t.Parallel()

		got, err := methods.URL("", methods.UsersGet, url.Values{"user_ids": {"1,2"}})
		require.NoError(t, err)
		assert.Contains(t, got, "https://api.vk.com/method/users.get")
	})

	t.Run("unparseable base is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := methods.URL("://nope", methods.UsersGet, url.Values{})
		assert.ErrorIs(t, err, methods.ErrInvalidBaseURL)
	})
}
