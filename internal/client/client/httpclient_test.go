package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type request struct {
	method   string
	path     string
	query    string
	authSent bool
	auth     string
	body     map[string]any
}

// stubServer answers every request with status and body. The returned func
// reports the most recent request the server received.
func stubServer(t *testing.T, status int, body string) (*HTTPClient, func() request) {
	t.Helper()

	var (
		mu   sync.Mutex
		last request
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := request{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery}
		_, got.authSent = r.Header["Authorization"]
		got.auth = r.Header.Get("Authorization")
		if b, _ := io.ReadAll(r.Body); len(b) > 0 {
			_ = json.Unmarshal(b, &got.body)
		}

		mu.Lock()
		last = got
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, 5*time.Second)
	t.Cleanup(func() { _ = c.Close() })

	return c, func() request {
		mu.Lock()
		defer mu.Unlock()
		return last
	}
}

const authBody = `{"token":"tok","user":{"id":7,"username":"alice","email":"a@example.com"}}`
const postBody = `{"id":3,"title":"t","content":"c","author_id":7,"created_at":"2025-01-02T03:04:05Z","updated_at":"2025-01-02T03:04:05Z"}`

func TestHTTPClient_LoginStoresBearer(t *testing.T) {
	c, last := stubServer(t, http.StatusOK, authBody)

	res, err := c.Login(context.Background(), "a@example.com", "password1")
	require.NoError(t, err)

	assert.Equal(t, "tok", res.Token)
	assert.Equal(t, int64(7), res.User.ID)
	assert.Equal(t, "Bearer tok", c.Token())

	rec := last()
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/v0/auth/login", rec.path)
	assert.False(t, rec.authSent)
	assert.Equal(t, "a@example.com", rec.body["email"])
}

func TestHTTPClient_RegisterStoresBearer(t *testing.T) {
	c, last := stubServer(t, http.StatusCreated, authBody)

	_, err := c.Register(context.Background(), "alice", "a@example.com", "password1")
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok", c.Token())

	rec := last()
	assert.Equal(t, "/api/v0/auth/register", rec.path)
	assert.Equal(t, "alice", rec.body["username"])
}

func TestHTTPClient_MutationsSendToken(t *testing.T) {
	c, last := stubServer(t, http.StatusOK, postBody)
	c.SetToken("Bearer abc")
	ctx := context.Background()

	post, err := c.CreatePost(ctx, "t", "c")
	require.NoError(t, err)
	assert.Equal(t, int64(3), post.ID)
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), post.CreatedAt.UTC())

	rec := last()
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/v1/posts", rec.path)
	assert.Equal(t, "Bearer abc", rec.auth)

	_, err = c.UpdatePost(ctx, 3, "t2", "c2")
	require.NoError(t, err)

	rec = last()
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/api/v1/posts/3", rec.path)
	assert.Equal(t, "Bearer abc", rec.auth)
	assert.Equal(t, "t2", rec.body["title"])
}

func TestHTTPClient_DeleteSendsToken(t *testing.T) {
	c, last := stubServer(t, http.StatusNoContent, "")
	c.SetToken("Bearer abc")

	require.NoError(t, c.DeletePost(context.Background(), 9))

	rec := last()
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/api/v1/posts/9", rec.path)
	assert.Equal(t, "Bearer abc", rec.auth)
}

func TestHTTPClient_ReadsNeverSendToken(t *testing.T) {
	c, last := stubServer(t, http.StatusOK, postBody)
	c.SetToken("Bearer abc")

	_, err := c.GetPost(context.Background(), 3)
	require.NoError(t, err)

	rec := last()
	assert.Equal(t, "/api/v0/posts/3", rec.path)
	assert.False(t, rec.authSent)
}

func TestHTTPClient_ListQuery(t *testing.T) {
	c, last := stubServer(t, http.StatusOK, `{"posts":[],"total":0,"limit":0,"offset":0}`)

	page, err := c.ListPosts(context.Background(), 5, 20)
	require.NoError(t, err)
	assert.Empty(t, page.Posts)

	rec := last()
	assert.Equal(t, "/api/v0/posts", rec.path)
	assert.Equal(t, "limit=5&offset=20", rec.query)
	assert.False(t, rec.authSent)
}

func TestHTTPClient_ErrorBody(t *testing.T) {
	c, _ := stubServer(t, http.StatusForbidden, `{"error":"forbidden","message":"forbidden"}`)

	err := c.DeletePost(context.Background(), 1)
	require.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, "forbidden", err.Error())
}

func TestHTTPClient_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, time.Second)
	_, err := c.GetPost(context.Background(), 1)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestNewHTTPClient_AddsScheme(t *testing.T) {
	c := NewHTTPClient("127.0.0.1:8080/", 0)
	assert.Equal(t, "http://127.0.0.1:8080", c.baseURL)
}
