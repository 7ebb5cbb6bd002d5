package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/common"
	"github.com/dmitrijs2005/gophblog/internal/logging"
	"github.com/dmitrijs2005/gophblog/internal/server/auth"
	"github.com/dmitrijs2005/gophblog/internal/server/models"
	"github.com/dmitrijs2005/gophblog/internal/server/services"
)

type fakeUsers struct {
	known map[int64]*models.User

	regResp   *services.AuthResult
	regErr    error
	loginResp *services.AuthResult
	loginErr  error
	lookupErr error
}

func (f *fakeUsers) Register(context.Context, string, string, string) (*services.AuthResult, error) {
	return f.regResp, f.regErr
}

func (f *fakeUsers) Login(context.Context, string, string) (*services.AuthResult, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	u, ok := f.known[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

type fakePosts struct {
	post *models.Post
	page *models.PostPage
	err  error

	lastCaller int64
	lastID     int64
}

func (f *fakePosts) Create(_ context.Context, authorID int64, title, content string) (*models.Post, error) {
	f.lastCaller = authorID
	if f.err != nil {
		return nil, f.err
	}
	return &models.Post{ID: 1, Title: title, Content: content, AuthorID: authorID}, nil
}

func (f *fakePosts) Get(_ context.Context, id int64) (*models.Post, error) {
	f.lastID = id
	return f.post, f.err
}

func (f *fakePosts) List(context.Context, uint64, uint64) (*models.PostPage, error) {
	return f.page, f.err
}

func (f *fakePosts) Update(_ context.Context, callerID, id int64, title, content string) (*models.Post, error) {
	f.lastCaller, f.lastID = callerID, id
	if f.err != nil {
		return nil, f.err
	}
	return &models.Post{ID: id, Title: title, Content: content, AuthorID: callerID}, nil
}

func (f *fakePosts) Delete(_ context.Context, callerID, id int64) error {
	f.lastCaller, f.lastID = callerID, id
	return f.err
}

const testSecret = "secret"

func newTestServer(users *fakeUsers, posts *fakePosts) *GRPCServer {
	if users == nil {
		users = &fakeUsers{}
	}
	if posts == nil {
		posts = &fakePosts{}
	}
	return NewGRPCServer("127.0.0.1:0", logging.Nop{}, users, posts, auth.NewService([]byte(testSecret), time.Hour))
}
