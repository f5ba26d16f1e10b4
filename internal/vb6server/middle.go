package vb6server

import (
	"context"
	"net/http"
	"strings"
)

// ctxKey namespaces values this package stashes on a request's context.
type ctxKey int

const ctxKeyUser ctxKey = iota

// requireAuth is chi middleware that extracts and validates the bearer
// token, rejecting the request with 401 if it's missing or invalid, and
// otherwise making the authenticated User available via userFromContext.
func requireAuth(store Store, secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			tok, err := bearerToken(req)
			if err != nil {
				writeError(w, req, http.StatusUnauthorized, "missing or malformed Authorization header")
				return
			}

			user, err := verifyJWT(req.Context(), store.Users(), secret, tok)
			if err != nil {
				writeError(w, req, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(req.Context(), ctxKeyUser, user)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

func bearerToken(req *http.Request) (string, error) {
	h := req.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return "", ErrBadCredentials
	}
	return strings.TrimPrefix(h, prefix), nil
}

func userFromContext(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(ctxKeyUser).(User)
	return u, ok
}

// recoverPanic is chi middleware that converts a panic in a later handler
// into a 500 response instead of crashing the server.
func recoverPanic() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					writeError(w, req, http.StatusInternalServerError, "an internal server error occurred")
				}
			}()
			next.ServeHTTP(w, req)
		})
	}
}
