package models

// PostPage is one list result. Limit and Offset describe the page that
// follows this one; Total is the row count at query time.
type PostPage struct {
	Posts  []*Post
	Total  uint64
	Limit  uint64
	Offset uint64
}
