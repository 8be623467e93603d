// Package auth provides bearer-token authentication for the typemap Flight service.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
)

// ErrInvalidToken is returned by authenticators for tokens they reject.
var ErrInvalidToken = errors.New("invalid token")

// Authenticator validates bearer tokens and returns the caller identity.
// Implementations MUST be goroutine-safe.
type Authenticator interface {
	// Authenticate validates a bearer token and returns the identity used in logs.
	Authenticate(ctx context.Context, token string) (identity string, err error)
}

// AuthenticatorFunc adapts a function to the Authenticator interface.
type AuthenticatorFunc func(ctx context.Context, token string) (string, error)

// Authenticate calls f(ctx, token).
func (f AuthenticatorFunc) Authenticate(ctx context.Context, token string) (string, error) {
	return f(ctx, token)
}

// BearerAuth creates an Authenticator from a validation function.
//
//	auth := auth.BearerAuth(func(token string) (string, error) {
//	    if token == os.Getenv("API_KEY") {
//	        return "service", nil
//	    }
//	    return "", auth.ErrInvalidToken
//	})
func BearerAuth(validate func(token string) (identity string, err error)) Authenticator {
	return AuthenticatorFunc(func(_ context.Context, token string) (string, error) {
		return validate(token)
	})
}

// StaticToken accepts exactly one shared token and reports identity for it.
func StaticToken(token, identity string) Authenticator {
	want := []byte(token)
	return BearerAuth(func(got string) (string, error) {
		if len(want) == 0 || subtle.ConstantTimeCompare(want, []byte(got)) != 1 {
			return "", ErrInvalidToken
		}
		return identity, nil
	})
}

// NoAuth returns an Authenticator that allows all requests as "anonymous".
// Useful for development/testing. DO NOT use in production.
func NoAuth() Authenticator {
	return AuthenticatorFunc(func(context.Context, string) (string, error) {
		return "anonymous", nil
	})
}
