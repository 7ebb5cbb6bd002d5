package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/client/models"
	"github.com/dmitrijs2005/gophblog/internal/common"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxErrorBody = 1 << 20

// HTTPClient talks to the REST API.
//
// The remembered token is a plain field. Concurrent logins on one client are
// last-writer-wins.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   string
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the server at baseURL. A bare host:port
// gets an http:// scheme. timeout bounds each request, zero means none.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if !strings.Contains(baseURL, "://") {
		baseURL = "http://" + baseURL
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *HTTPClient) Token() string         { return c.token }
func (c *HTTPClient) SetToken(token string) { c.token = token }

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func publicPath(parts ...string) string {
	return common.APIPrefix + common.PublicScope + strings.Join(parts, "")
}

func protectedPath(parts ...string) string {
	return common.APIPrefix + common.ProtectedScope + strings.Join(parts, "")
}

func postPath(id int64) string {
	return common.RoutePosts + "/" + strconv.FormatInt(id, 10)
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (*models.AuthResult, error) {
	body := map[string]string{"username": username, "email": email, "password": password}

	var res models.AuthResult
	if err := c.do(ctx, http.MethodPost, publicPath(common.RouteRegister), body, false, &res); err != nil {
		return nil, err
	}
	c.token = bearer(res.Token)
	return &res, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	body := map[string]string{"email": email, "password": password}

	var res models.AuthResult
	if err := c.do(ctx, http.MethodPost, publicPath(common.RouteLogin), body, false, &res); err != nil {
		return nil, err
	}
	c.token = bearer(res.Token)
	return &res, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, title, content string) (*models.Post, error) {
	body := map[string]string{"title": title, "content": content}

	var post models.Post
	if err := c.do(ctx, http.MethodPost, protectedPath(common.RoutePosts), body, true, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, http.MethodGet, publicPath(postPath(id)), nil, false, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) ListPosts(ctx context.Context, limit, offset uint64) (*models.PostPage, error) {
	q := url.Values{}
	q.Set(common.QueryParamLimit, strconv.FormatUint(limit, 10))
	q.Set(common.QueryParamOffset, strconv.FormatUint(offset, 10))

	var page models.PostPage
	if err := c.do(ctx, http.MethodGet, publicPath(common.RoutePosts)+"?"+q.Encode(), nil, false, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) UpdatePost(ctx context.Context, id int64, title, content string) (*models.Post, error) {
	body := map[string]string{"title": title, "content": content}

	var post models.Post
	if err := c.do(ctx, http.MethodPut, protectedPath(postPath(id)), body, true, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) DeletePost(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, protectedPath(postPath(id)), nil, true, nil)
}

// do sends one request and decodes a 2xx body into out. Error statuses are
// mapped through mapHTTPStatus using the message from the JSON error body.
func (c *HTTPClient) do(ctx context.Context, method, path string, in any, withToken bool, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withToken {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &ServerError{Err: ErrUnavailable, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var e struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&e)
		return mapHTTPStatus(resp.StatusCode, e.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ServerError{Err: ErrInternal, Message: "decode response: " + err.Error()}
	}
	return nil
}
