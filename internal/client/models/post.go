package models

import "time"

type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostPage is one page of posts. Limit and Offset are the window the server
// suggests for the following request, not the ones that produced Posts.
type PostPage struct {
	Posts  []*Post `json:"posts"`
	Total  uint64  `json:"total"`
	Limit  uint64  `json:"limit"`
	Offset uint64  `json:"offset"`
}
