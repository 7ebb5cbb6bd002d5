package client

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/client/models"
	"github.com/dmitrijs2005/gophblog/internal/common"
	pb "github.com/dmitrijs2005/gophblog/internal/proto"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// GRPCClient talks to the gRPC services.
//
// The remembered token is a plain field. Concurrent logins on one client are
// last-writer-wins.
type GRPCClient struct {
	conn      *grpc.ClientConn
	public    pb.BlogPublicServiceClient
	protected pb.BlogProtectedServiceClient
	timeout   time.Duration
	token     string
}

var _ Client = (*GRPCClient)(nil)

// NewGRPCClient connects lazily to addr. timeout bounds each call, zero
// means none. Extra options are appended after the defaults, so tests can
// swap the dialer.
func NewGRPCClient(addr string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{timeout: timeout}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithUnaryInterceptor(c.tokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, err
	}

	c.conn = conn
	c.public = pb.NewBlogPublicServiceClient(conn)
	c.protected = pb.NewBlogProtectedServiceClient(conn)
	return c, nil
}

func (c *GRPCClient) Token() string         { return c.token }
func (c *GRPCClient) SetToken(token string) { c.token = token }

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// tokenInterceptor attaches the remembered token to protected-service calls
// only.
func (c *GRPCClient) tokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if strings.HasPrefix(method, "/"+pb.ProtectedServiceName+"/") {
		ctx = metadata.AppendToOutgoingContext(ctx, common.AuthorizationHeaderName, c.token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func (c *GRPCClient) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *GRPCClient) Register(ctx context.Context, username, email, password string) (*models.AuthResult, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.public.Register(ctx, &pb.RegisterRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return nil, mapGRPCError(err)
	}
	c.token = bearer(resp.Token)
	return fromAuthResponse(resp), nil
}

func (c *GRPCClient) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.public.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapGRPCError(err)
	}
	c.token = bearer(resp.Token)
	return fromAuthResponse(resp), nil
}

func (c *GRPCClient) CreatePost(ctx context.Context, title, content string) (*models.Post, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.protected.CreatePost(ctx, &pb.CreatePostRequest{Title: title, Content: content})
	if err != nil {
		return nil, mapGRPCError(err)
	}
	return fromPost(resp), nil
}

func (c *GRPCClient) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.public.GetPost(ctx, &pb.GetPostRequest{ID: id})
	if err != nil {
		return nil, mapGRPCError(err)
	}
	return fromPost(resp), nil
}

func (c *GRPCClient) ListPosts(ctx context.Context, limit, offset uint64) (*models.PostPage, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.public.ListPosts(ctx, &pb.ListPostsRequest{Limit: limit, Offset: offset})
	if err != nil {
		return nil, mapGRPCError(err)
	}

	page := &models.PostPage{
		Posts:  make([]*models.Post, 0, len(resp.Posts)),
		Total:  resp.Total,
		Limit:  resp.Limit,
		Offset: resp.Offset,
	}
	for _, p := range resp.Posts {
		page.Posts = append(page.Posts, fromPost(p))
	}
	return page, nil
}

func (c *GRPCClient) UpdatePost(ctx context.Context, id int64, title, content string) (*models.Post, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.protected.UpdatePost(ctx, &pb.UpdatePostRequest{ID: id, Title: title, Content: content})
	if err != nil {
		return nil, mapGRPCError(err)
	}
	return fromPost(resp), nil
}

func (c *GRPCClient) DeletePost(ctx context.Context, id int64) error {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	if _, err := c.protected.DeletePost(ctx, &pb.DeletePostRequest{ID: id}); err != nil {
		return mapGRPCError(err)
	}
	return nil
}

func fromAuthResponse(resp *pb.AuthResponse) *models.AuthResult {
	res := &models.AuthResult{Token: resp.Token}
	if resp.User != nil {
		res.User = models.User{ID: resp.User.ID, Username: resp.User.Username, Email: resp.User.Email}
	}
	return res
}

func fromPost(p *pb.Post) *models.Post {
	post := &models.Post{
		ID:       p.ID,
		Title:    p.Title,
		Content:  p.Content,
		AuthorID: p.AuthorID,
	}
	if p.CreatedAt != nil {
		post.CreatedAt = p.CreatedAt.AsTime()
	}
	if p.UpdatedAt != nil {
		post.UpdatedAt = p.UpdatedAt.AsTime()
	}
	return post
}
