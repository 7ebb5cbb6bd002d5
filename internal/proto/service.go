package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	PublicServiceName    = "blog.BlogPublicService"
	ProtectedServiceName = "blog.BlogProtectedService"

	RegisterFullMethod   = "/" + PublicServiceName + "/Register"
	LoginFullMethod      = "/" + PublicServiceName + "/Login"
	GetPostFullMethod    = "/" + PublicServiceName + "/GetPost"
	ListPostsFullMethod  = "/" + PublicServiceName + "/ListPosts"
	CreatePostFullMethod = "/" + ProtectedServiceName + "/CreatePost"
	UpdatePostFullMethod = "/" + ProtectedServiceName + "/UpdatePost"
	DeletePostFullMethod = "/" + ProtectedServiceName + "/DeletePost"
)

// BlogPublicServiceServer serves calls that need no credential.
type BlogPublicServiceServer interface {
	Register(context.Context, *RegisterRequest) (*AuthResponse, error)
	Login(context.Context, *LoginRequest) (*AuthResponse, error)
	GetPost(context.Context, *GetPostRequest) (*Post, error)
	ListPosts(context.Context, *ListPostsRequest) (*ListPostsResponse, error)
}

// BlogProtectedServiceServer serves calls that require a bearer credential.
type BlogProtectedServiceServer interface {
	CreatePost(context.Context, *CreatePostRequest) (*Post, error)
	UpdatePost(context.Context, *UpdatePostRequest) (*Post, error)
	DeletePost(context.Context, *DeletePostRequest) (*emptypb.Empty, error)
}

type UnimplementedBlogPublicServiceServer struct{}

func (UnimplementedBlogPublicServiceServer) Register(context.Context, *RegisterRequest) (*AuthResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedBlogPublicServiceServer) Login(context.Context, *LoginRequest) (*AuthResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedBlogPublicServiceServer) GetPost(context.Context, *GetPostRequest) (*Post, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPost not implemented")
}
func (UnimplementedBlogPublicServiceServer) ListPosts(context.Context, *ListPostsRequest) (*ListPostsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPosts not implemented")
}

type UnimplementedBlogProtectedServiceServer struct{}

func (UnimplementedBlogProtectedServiceServer) CreatePost(context.Context, *CreatePostRequest) (*Post, error) {
	return nil, status.Error(codes.Unimplemented, "method CreatePost not implemented")
}
func (UnimplementedBlogProtectedServiceServer) UpdatePost(context.Context, *UpdatePostRequest) (*Post, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdatePost not implemented")
}
func (UnimplementedBlogProtectedServiceServer) DeletePost(context.Context, *DeletePostRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeletePost not implemented")
}

// unary adapts a typed service method to grpc.MethodHandler, running the
// server's interceptor chain when one is installed.
func unary[S, Req, Resp any](fullMethod string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(S), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(srv.(S), ctx, req.(*Req))
		})
	}
}

var BlogPublicServiceDesc = grpc.ServiceDesc{
	ServiceName: PublicServiceName,
	HandlerType: (*BlogPublicServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unary(RegisterFullMethod, BlogPublicServiceServer.Register)},
		{MethodName: "Login", Handler: unary(LoginFullMethod, BlogPublicServiceServer.Login)},
		{MethodName: "GetPost", Handler: unary(GetPostFullMethod, BlogPublicServiceServer.GetPost)},
		{MethodName: "ListPosts", Handler: unary(ListPostsFullMethod, BlogPublicServiceServer.ListPosts)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "blog.proto",
}

var BlogProtectedServiceDesc = grpc.ServiceDesc{
	ServiceName: ProtectedServiceName,
	HandlerType: (*BlogProtectedServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreatePost", Handler: unary(CreatePostFullMethod, BlogProtectedServiceServer.CreatePost)},
		{MethodName: "UpdatePost", Handler: unary(UpdatePostFullMethod, BlogProtectedServiceServer.UpdatePost)},
		{MethodName: "DeletePost", Handler: unary(DeletePostFullMethod, BlogProtectedServiceServer.DeletePost)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "blog.proto",
}

func RegisterBlogPublicServiceServer(s grpc.ServiceRegistrar, srv BlogPublicServiceServer) {
	s.RegisterService(&BlogPublicServiceDesc, srv)
}

func RegisterBlogProtectedServiceServer(s grpc.ServiceRegistrar, srv BlogProtectedServiceServer) {
	s.RegisterService(&BlogProtectedServiceDesc, srv)
}
