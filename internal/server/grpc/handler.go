package grpc

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/gophblog/internal/common"
	pb "github.com/dmitrijs2005/gophblog/internal/proto"
	"github.com/dmitrijs2005/gophblog/internal/server/models"
	"github.com/dmitrijs2005/gophblog/internal/server/services"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {
	res, err := s.users.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		return nil, s.fail(ctx, "register", err)
	}
	return toAuthResponse(res), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	res, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.fail(ctx, "login", err)
	}
	return toAuthResponse(res), nil
}

func (s *GRPCServer) GetPost(ctx context.Context, req *pb.GetPostRequest) (*pb.Post, error) {
	if err := checkPostID(req.ID); err != nil {
		return nil, s.fail(ctx, "get post", err)
	}
	post, err := s.posts.Get(ctx, req.ID)
	if err != nil {
		return nil, s.fail(ctx, "get post", err)
	}
	return toPost(post), nil
}

func (s *GRPCServer) ListPosts(ctx context.Context, req *pb.ListPostsRequest) (*pb.ListPostsResponse, error) {
	page, err := s.posts.List(ctx, req.Limit, req.Offset)
	if err != nil {
		return nil, s.fail(ctx, "list posts", err)
	}

	resp := &pb.ListPostsResponse{
		Posts:  make([]*pb.Post, 0, len(page.Posts)),
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	for _, p := range page.Posts {
		resp.Posts = append(resp.Posts, toPost(p))
	}
	return resp, nil
}

func (s *GRPCServer) CreatePost(ctx context.Context, req *pb.CreatePostRequest) (*pb.Post, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, s.fail(ctx, "create post", err)
	}
	post, err := s.posts.Create(ctx, uid, req.Title, req.Content)
	if err != nil {
		return nil, s.fail(ctx, "create post", err)
	}
	return toPost(post), nil
}

func (s *GRPCServer) UpdatePost(ctx context.Context, req *pb.UpdatePostRequest) (*pb.Post, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, s.fail(ctx, "update post", err)
	}
	if err := checkPostID(req.ID); err != nil {
		return nil, s.fail(ctx, "update post", err)
	}
	post, err := s.posts.Update(ctx, uid, req.ID, req.Title, req.Content)
	if err != nil {
		return nil, s.fail(ctx, "update post", err)
	}
	return toPost(post), nil
}

func (s *GRPCServer) DeletePost(ctx context.Context, req *pb.DeletePostRequest) (*emptypb.Empty, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, s.fail(ctx, "delete post", err)
	}
	if err := checkPostID(req.ID); err != nil {
		return nil, s.fail(ctx, "delete post", err)
	}
	if err := s.posts.Delete(ctx, uid, req.ID); err != nil {
		return nil, s.fail(ctx, "delete post", err)
	}
	return &emptypb.Empty{}, nil
}

// checkPostID rejects ids the REST router would refuse to route.
func checkPostID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid post id %q", common.ErrValidation, strconv.FormatInt(id, 10))
	}
	return nil
}

func toAuthResponse(res *services.AuthResult) *pb.AuthResponse {
	return &pb.AuthResponse{
		Token: res.Token,
		User:  &pb.User{ID: res.User.ID, Username: res.User.Username, Email: res.User.Email},
	}
}

func toPost(p *models.Post) *pb.Post {
	return &pb.Post{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		AuthorID:  p.AuthorID,
		CreatedAt: timestamppb.New(p.CreatedAt),
		UpdatedAt: timestamppb.New(p.UpdatedAt),
	}
}
