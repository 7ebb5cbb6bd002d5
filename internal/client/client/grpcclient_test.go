package client

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gophblog/internal/common"
	pb "github.com/dmitrijs2005/gophblog/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestTokenInterceptor(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		token    string
		wantSent bool
	}{
		{"protected call carries token", pb.CreatePostFullMethod, "Bearer abc", true},
		{"protected call carries empty token", pb.DeletePostFullMethod, "", true},
		{"public call has no token", pb.GetPostFullMethod, "Bearer abc", false},
		{"login has no token", pb.LoginFullMethod, "Bearer abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &GRPCClient{token: tt.token}

			var got []string
			invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
				md, _ := metadata.FromOutgoingContext(ctx)
				got = md.Get(common.AuthorizationHeaderName)
				return nil
			}

			err := c.tokenInterceptor(context.Background(), tt.method, nil, nil, nil, invoker)
			require.NoError(t, err)

			if tt.wantSent {
				assert.Equal(t, []string{tt.token}, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestFromPost_NilTimestamps(t *testing.T) {
	p := fromPost(&pb.Post{ID: 1, Title: "t"})
	assert.True(t, p.CreatedAt.IsZero())
	assert.Equal(t, "t", p.Title)
}

func TestFromAuthResponse_NilUser(t *testing.T) {
	res := fromAuthResponse(&pb.AuthResponse{Token: "x"})
	assert.Equal(t, "x", res.Token)
	assert.Zero(t, res.User.ID)
}
