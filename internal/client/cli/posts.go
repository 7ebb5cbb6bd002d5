package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/client/models"
)

// Create prompts for a title and a multi-line body.
func (a *App) Create(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Enter content", a.out)
	if err != nil {
		return err
	}

	post, err := a.api.CreatePost(ctx, title, content)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created post #%d\n", post.ID)
	return nil
}

func (a *App) Get(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	post, err := a.api.GetPost(ctx, id)
	if err != nil {
		return err
	}
	printPost(a.out, post, true)
	return nil
}

// List takes optional limit and offset arguments.
func (a *App) List(ctx context.Context, args []string) error {
	var limit, offset uint64
	var err error

	if len(args) > 0 {
		if limit, err = strconv.ParseUint(args[0], 10, 64); err != nil {
			return fmt.Errorf("invalid limit %q", args[0])
		}
	}
	if len(args) > 1 {
		if offset, err = strconv.ParseUint(args[1], 10, 64); err != nil {
			return fmt.Errorf("invalid offset %q", args[1])
		}
	}

	page, err := a.api.ListPosts(ctx, limit, offset)
	if err != nil {
		return err
	}

	if len(page.Posts) == 0 {
		fmt.Fprintln(a.out, "No posts")
	}
	for _, p := range page.Posts {
		printPost(a.out, p, false)
	}
	fmt.Fprintf(a.out, "Total: %d. Next: list %d %d\n", page.Total, page.Limit, page.Offset)
	return nil
}

// Update replaces the title and body of a post.
func (a *App) Update(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Enter new title", a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Enter new content", a.out)
	if err != nil {
		return err
	}

	post, err := a.api.UpdatePost(ctx, id, title, content)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated post #%d\n", post.ID)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := a.api.DeletePost(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted post #%d\n", id)
	return nil
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("usage: <command> <post id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid post id %q", args[0])
	}
	return id, nil
}

func printPost(w io.Writer, p *models.Post, full bool) {
	fmt.Fprintf(w, "#%d %s (author %d, %s)\n", p.ID, p.Title, p.AuthorID, p.UpdatedAt.Local().Format(time.DateTime))
	if full {
		fmt.Fprintln(w, p.Content)
		return
	}
	fmt.Fprintln(w, "  "+excerpt(p.Content, 60))
}

// excerpt returns the first line of s cut to at most n runes.
func excerpt(s string, n int) string {
	s, _, _ = strings.Cut(s, "\n")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
