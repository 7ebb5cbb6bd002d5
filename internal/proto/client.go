package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

type BlogPublicServiceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*AuthResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthResponse, error)
	GetPost(ctx context.Context, in *GetPostRequest, opts ...grpc.CallOption) (*Post, error)
	ListPosts(ctx context.Context, in *ListPostsRequest, opts ...grpc.CallOption) (*ListPostsResponse, error)
}

type BlogProtectedServiceClient interface {
	CreatePost(ctx context.Context, in *CreatePostRequest, opts ...grpc.CallOption) (*Post, error)
	UpdatePost(ctx context.Context, in *UpdatePostRequest, opts ...grpc.CallOption) (*Post, error)
	DeletePost(ctx context.Context, in *DeletePostRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type blogPublicServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBlogPublicServiceClient(cc grpc.ClientConnInterface) BlogPublicServiceClient {
	return &blogPublicServiceClient{cc: cc}
}

func (c *blogPublicServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, RegisterFullMethod, in, opts)
}

func (c *blogPublicServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, LoginFullMethod, in, opts)
}

func (c *blogPublicServiceClient) GetPost(ctx context.Context, in *GetPostRequest, opts ...grpc.CallOption) (*Post, error) {
	return invoke[Post](ctx, c.cc, GetPostFullMethod, in, opts)
}

func (c *blogPublicServiceClient) ListPosts(ctx context.Context, in *ListPostsRequest, opts ...grpc.CallOption) (*ListPostsResponse, error) {
	return invoke[ListPostsResponse](ctx, c.cc, ListPostsFullMethod, in, opts)
}

type blogProtectedServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBlogProtectedServiceClient(cc grpc.ClientConnInterface) BlogProtectedServiceClient {
	return &blogProtectedServiceClient{cc: cc}
}

func (c *blogProtectedServiceClient) CreatePost(ctx context.Context, in *CreatePostRequest, opts ...grpc.CallOption) (*Post, error) {
	return invoke[Post](ctx, c.cc, CreatePostFullMethod, in, opts)
}

func (c *blogProtectedServiceClient) UpdatePost(ctx context.Context, in *UpdatePostRequest, opts ...grpc.CallOption) (*Post, error) {
	return invoke[Post](ctx, c.cc, UpdatePostFullMethod, in, opts)
}

func (c *blogProtectedServiceClient) DeletePost(ctx context.Context, in *DeletePostRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, DeletePostFullMethod, in, opts)
}
