package rest

import (
	"time"

	"github.com/dmitrijs2005/gophblog/internal/server/models"
	"github.com/dmitrijs2005/gophblog/internal/server/services"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type postRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type postResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type listResponse struct {
	Posts  []postResponse `json:"posts"`
	Total  uint64         `json:"total"`
	Limit  uint64         `json:"limit"`
	Offset uint64         `json:"offset"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func toAuthResponse(res *services.AuthResult) authResponse {
	return authResponse{
		Token: res.Token,
		User:  userResponse{ID: res.User.ID, Username: res.User.Username, Email: res.User.Email},
	}
}

func toPostResponse(p *models.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toListResponse(page *models.PostPage) listResponse {
	resp := listResponse{
		Posts:  make([]postResponse, 0, len(page.Posts)),
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	for _, p := range page.Posts {
		resp.Posts = append(resp.Posts, toPostResponse(p))
	}
	return resp
}
