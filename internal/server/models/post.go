package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/common"
)

type Post struct {
	ID        int64
	Title     string
	Content   string
	AuthorID  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateTitle rejects blank titles with common.ErrValidation.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	return nil
}

// NewPost builds an unsaved post owned by authorID.
func NewPost(title, content string, authorID int64) (*Post, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	return &Post{Title: title, Content: content, AuthorID: authorID}, nil
}
