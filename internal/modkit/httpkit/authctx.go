package httpkit

import (
	"net/http"
	"strings"

	"orggate/internal/core/identity"
	perrs "orggate/internal/platform/errors"
	pnet "orggate/internal/platform/net"
)

// User returns the authenticated user id from the request context
func User(r *http.Request) (string, error) {
	uid := pnet.UserID(r.Context())
	if uid == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return uid, nil
}

// Email returns the authenticated email from the request context
func Email(r *http.Request) (string, error) {
	em := pnet.Email(r.Context())
	if em == "" {
		return "", perrs.Unauthorizedf("missing email claim")
	}
	return em, nil
}

// Actor returns the best-effort actor from the request context
// It never errors; services validate emptiness before mutating calls
func Actor(r *http.Request) identity.Actor {
	return identity.Actor{
		UserID: pnet.UserID(r.Context()),
		Email:  pnet.Email(r.Context()),
	}
}

// MustUser returns the authenticated user id or panics
func MustUser(r *http.Request) string {
	uid, err := User(r)
	if err != nil {
		panic(err)
	}
	return uid
}

// JWT returns the raw bearer token from the Authorization header
func JWT(r *http.Request) (string, error) {
	authz := r.Header.Get("Authorization")
	if strings.TrimSpace(authz) == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	// case-insensitive Bearer prefix (don't trim the whole header first)
	const prefix = "bearer "
	if len(authz) < len(prefix) || strings.ToLower(authz[:len(prefix)]) != prefix {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	raw := strings.TrimSpace(authz[len(prefix):])
	if raw == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return raw, nil
}

// MustJWT returns the raw bearer token or panics
// only use on routes protected by the auth middleware
func MustJWT(r *http.Request) string {
	raw, err := JWT(r)
	if err != nil {
		panic(err)
	}
	return raw
}
