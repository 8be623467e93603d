package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func incoming(header string) context.Context {
	if header == "" {
		return context.Background()
	}
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", header))
}

func TestStaticToken(t *testing.T) {
	a := StaticToken("s3cret", "ops")

	identity, err := a.Authenticate(context.Background(), "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "ops", identity)

	_, err = a.Authenticate(context.Background(), "wrong")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = StaticToken("", "ops").Authenticate(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractToken(t *testing.T) {
	token, err := ExtractToken(incoming("Bearer abc"))
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	token, err = ExtractToken(incoming(""))
	require.NoError(t, err)
	assert.Empty(t, token)

	_, err = ExtractToken(incoming("Basic abc"))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = ExtractToken(incoming("Bearer "))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestUnaryServerInterceptor(t *testing.T) {
	interceptor := UnaryServerInterceptor(StaticToken("s3cret", "ops"))
	handler := func(ctx context.Context, req any) (any, error) {
		return IdentityFromContext(ctx), nil
	}

	got, err := interceptor(incoming("Bearer s3cret"), nil, &grpc.UnaryServerInfo{}, handler)
	require.NoError(t, err)
	assert.Equal(t, "ops", got)

	_, err = interceptor(incoming("Bearer nope"), nil, &grpc.UnaryServerInfo{}, handler)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = interceptor(incoming(""), nil, &grpc.UnaryServerInfo{}, handler)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	got, err = UnaryServerInterceptor(nil)(incoming(""), nil, &grpc.UnaryServerInfo{}, handler)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNoAuth(t *testing.T) {
	identity, err := NoAuth().Authenticate(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "anonymous", identity)
}

func TestAuthenticatorFunc(t *testing.T) {
	var a Authenticator = AuthenticatorFunc(func(_ context.Context, token string) (string, error) {
		if token == "ok" {
			return "svc", nil
		}
		return "", ErrInvalidToken
	})

	identity, err := a.Authenticate(context.Background(), "ok")
	require.NoError(t, err)
	assert.Equal(t, "svc", identity)

	_, err = a.Authenticate(context.Background(), "bad")
	require.ErrorIs(t, err, ErrInvalidToken)
}
