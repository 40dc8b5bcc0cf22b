// Package jwtauth verifies bearer tokens and extracts identity claims
package jwtauth

import (
	"github.com/golang-jwt/jwt/v5"

	"orggate/internal/platform/config"
	perrs "orggate/internal/platform/errors"
)

// Claims is the token payload the facade cares about
// the user id rides in the standard subject claim
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Parser validates HS256 tokens against a shared secret
type Parser struct {
	secret []byte
	issuer string
}

// New builds a Parser. issuer is optional; empty skips the issuer check
func New(secret []byte, issuer string) *Parser {
	return &Parser{secret: secret, issuer: issuer}
}

// FromConfig reads the signing secret and expected issuer from the env
func FromConfig(cfg config.Conf) *Parser {
	return New([]byte(cfg.MustString("JWT_SECRET")), cfg.MayString("JWT_ISSUER", ""))
}

// Parse validates the token and returns the subject and email claims
// It satisfies httpkit.TokenFunc
func (p *Parser) Parse(token string) (string, string, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if p.issuer != "" {
		opts = append(opts, jwt.WithIssuer(p.issuer))
	}

	var claims Claims
	tok, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return p.secret, nil
	}, opts...)
	if err != nil {
		return "", "", perrs.Wrap(err, perrs.ErrorCodeUnauthorized, "invalid bearer token")
	}
	if !tok.Valid {
		return "", "", perrs.Unauthorizedf("invalid bearer token")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", "", perrs.Unauthorizedf("token has no subject claim")
	}
	return sub, claims.Email, nil
}
