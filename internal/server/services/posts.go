package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophblog/internal/paging"
	"github.com/dmitrijs2005/gophblog/internal/server/auth"
	"github.com/dmitrijs2005/gophblog/internal/server/models"
	"github.com/dmitrijs2005/gophblog/internal/server/repositories/posts"
)

type PostService struct {
	posts posts.Repository
}

func NewPostService(repo posts.Repository) *PostService {
	return &PostService{posts: repo}
}

func (s *PostService) Create(ctx context.Context, authorID int64, title, content string) (*models.Post, error) {
	post, err := models.NewPost(title, content, authorID)
	if err != nil {
		return nil, err
	}
	return s.posts.Create(ctx, post)
}

func (s *PostService) Get(ctx context.Context, id int64) (*models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// List returns up to limit posts starting at offset. A zero limit means
// paging.DefaultLimit. The returned page carries the window of the next
// request as computed by paging.Next.
func (s *PostService) List(ctx context.Context, limit, offset uint64) (*models.PostPage, error) {
	if limit == 0 {
		limit = paging.DefaultLimit
	}

	items, err := s.posts.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	total, err := s.posts.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	nextOffset, nextLimit := paging.Next(total, limit)
	return &models.PostPage{Posts: items, Total: total, Limit: nextLimit, Offset: nextOffset}, nil
}

// Update replaces title and content of a post owned by callerID.
func (s *PostService) Update(ctx context.Context, callerID, id int64, title, content string) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.EnsureOwner(post.AuthorID, callerID); err != nil {
		return nil, err
	}
	if err := models.ValidateTitle(title); err != nil {
		return nil, err
	}

	post.Title = title
	post.Content = content
	return s.posts.Update(ctx, post)
}

// Delete removes a post owned by callerID.
func (s *PostService) Delete(ctx context.Context, callerID, id int64) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.EnsureOwner(post.AuthorID, callerID); err != nil {
		return err
	}
	return s.posts.Delete(ctx, id)
}
