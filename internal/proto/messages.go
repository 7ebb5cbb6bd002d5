package proto

import "google.golang.org/protobuf/types/known/timestamppb"

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Post struct {
	ID        int64                  `json:"id"`
	Title     string                 `json:"title"`
	Content   string                 `json:"content"`
	AuthorID  int64                  `json:"author_id"`
	CreatedAt *timestamppb.Timestamp `json:"created_at,omitempty"`
	UpdatedAt *timestamppb.Timestamp `json:"updated_at,omitempty"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

type GetPostRequest struct {
	ID int64 `json:"id"`
}

type ListPostsRequest struct {
	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}

type ListPostsResponse struct {
	Posts  []*Post `json:"posts"`
	Total  uint64  `json:"total"`
	Limit  uint64  `json:"limit"`
	Offset uint64  `json:"offset"`
}

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type UpdatePostRequest struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type DeletePostRequest struct {
	ID int64 `json:"id"`
}
