package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSigningDisabled    = errors.New("token signing is disabled: JWT_SECRET is empty")
)

type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Issuer signs and verifies HS256 tokens with a shared secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Enabled reports whether a secret is configured.
func (i *Issuer) Enabled() bool {
	return len(i.secret) > 0
}

func (i *Issuer) Issue(id Identity) (*Token, error) {
	if !i.Enabled() {
		return nil, ErrSigningDisabled
	}

	now := i.now()
	exp := now.Add(i.ttl)
	claims := jwt.MapClaims{
		"sub":  id.ID,
		"role": id.Role,
		"kind": string(id.Kind),
		"iat":  now.Unix(),
		"exp":  exp.Unix(),
	}
	if id.Email != "" {
		claims["email"] = id.Email
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &Token{AccessToken: signed, TokenType: "Bearer", ExpiresAt: exp}, nil
}

// Parse verifies raw and extracts the identity from its claims. The role is
// read from "role" and falls back to "app_metadata.role".
func (i *Issuer) Parse(raw string) (Identity, error) {
	if !i.Enabled() {
		return Identity{}, ErrUnauthorized
	}

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil || !tok.Valid {
		return Identity{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrUnauthorized
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return Identity{}, fmt.Errorf("%w: missing subject", ErrUnauthorized)
	}

	id := Identity{ID: sub, Kind: KindUser}
	id.Email, _ = claims["email"].(string)
	if role, ok := claims["role"].(string); ok && role != "" {
		id.Role = role
	}
	if meta, ok := claims["app_metadata"].(map[string]any); ok && id.Role == "" {
		id.Role, _ = meta["role"].(string)
	}
	if kind, _ := claims["kind"].(string); kind == string(KindAdmin) {
		id.Kind = KindAdmin
	}
	return id, nil
}
