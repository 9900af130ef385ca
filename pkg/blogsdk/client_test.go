package blogsdk_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/bloggr/pkg/blogsdk"
	"github.com/stretchr/testify/require"
)

func TestClientErrorDecoding(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/registration", func(w http.ResponseWriter, r *http.Request) {
		(&blogsdk.ValidationError{Errors: []blogsdk.FieldError{
			{Message: "login already taken", Field: "login"},
			{Message: "email already taken", Field: "email"},
		}}).WriteError(w)
	})
	mux.HandleFunc("GET /blogs/{id}", func(w http.ResponseWriter, r *http.Request) {
		blogsdk.WriteStatus(w, r, http.StatusNotFound)
	})
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := blogsdk.NewClient(srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("validation errors keep every field", func(t *testing.T) {
		err := c.Register(ctx, blogsdk.RegistrationRequest{Login: "x"})
		require.Equal(t, http.StatusBadRequest, blogsdk.StatusOf(err))

		var ve *blogsdk.ValidationError
		require.ErrorAs(t, err, &ve)
		require.True(t, ve.HasField("login"))
		require.True(t, ve.HasField("email"))
		require.False(t, ve.HasField("password"))
	})

	t.Run("api errors carry status and path", func(t *testing.T) {
		_, err := c.GetBlog(ctx, "missing")
		var ae *blogsdk.APIError
		require.ErrorAs(t, err, &ae)
		require.Equal(t, http.StatusNotFound, ae.StatusCode)
		require.Equal(t, "/blogs/missing", ae.Path)
		require.NotEmpty(t, ae.Timestamp)
	})

	t.Run("empty bodies still map to a status", func(t *testing.T) {
		_, err := c.Me(ctx)
		require.Equal(t, http.StatusUnauthorized, blogsdk.StatusOf(err))
	})
}

func TestClientCookieJar(t *testing.T) {
	var seen, ua string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		ua = r.UserAgent()
		http.SetCookie(w, &http.Cookie{Name: blogsdk.RefreshTokenCookie, Value: "r1", Path: "/", HttpOnly: true})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accessToken":"a1"}`))
	})
	mux.HandleFunc("POST /auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		ck, err := r.Cookie(blogsdk.RefreshTokenCookie)
		if err == nil {
			seen = ck.Value
		}
		http.SetCookie(w, &http.Cookie{Name: blogsdk.RefreshTokenCookie, Value: "r2", Path: "/", HttpOnly: true})
		_, _ = w.Write([]byte(`{"accessToken":"a2"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := blogsdk.NewClient(srv.URL, blogsdk.WithUserAgent("sdk-test"))
	require.NoError(t, err)
	ctx := context.Background()

	tok, err := c.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	require.Equal(t, "a1", tok)
	require.Equal(t, "sdk-test", ua)
	require.Equal(t, "a1", c.AccessToken())
	require.Equal(t, "r1", c.RefreshToken())

	_, err = c.Refresh(ctx)
	require.NoError(t, err)
	require.Equal(t, "r1", seen)
	require.Equal(t, "r2", c.RefreshToken())
	require.Equal(t, "a2", c.AccessToken())

	c.SetRefreshToken("r1")
	require.Equal(t, "r1", c.RefreshToken())
}

func TestListParamsValues(t *testing.T) {
	v := blogsdk.ListParams{PageNumber: 2, SortBy: "login", SearchLoginTerm: "al"}.Values()
	require.Equal(t, "2", v.Get("pageNumber"))
	require.Equal(t, "login", v.Get("sortBy"))
	require.Equal(t, "al", v.Get("searchLoginTerm"))
	require.False(t, v.Has("pageSize"))
	require.False(t, v.Has("searchEmailTerm"))
}

func TestNewClientRejectsRelativeURL(t *testing.T) {
	_, err := blogsdk.NewClient("/relative")
	require.Error(t, err)
}
