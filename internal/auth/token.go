package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"

	issuer = "umkm-tasikmalaya"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carries the role and, for edit tokens, the record the bearer may modify
type Claims struct {
	Role   string `json:"role"`
	UMKMID int64  `json:"umkm_id,omitempty"`
	jwt.RegisteredClaims
}

// CanEdit reports whether the claims allow modifying the record
func (c *Claims) CanEdit(id int64) bool {
	if c.Role == RoleAdmin {
		return true
	}
	return c.Role == RoleEditor && c.UMKMID == id
}

// TokenIssuer signs and validates HS256 tokens
type TokenIssuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewTokenIssuer creates an issuer; an empty secret is replaced by a random
// per-process key, so tokens do not survive a restart
func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("failed to generate token key: %w", err)
		}
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &TokenIssuer{key: key, ttl: ttl, now: time.Now}, nil
}

// TTL returns the token lifetime
func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

func (t *TokenIssuer) IssueAdmin() (string, time.Time, error) {
	return t.issue(&Claims{Role: RoleAdmin}, "admin")
}

func (t *TokenIssuer) IssueEditor(umkmID int64) (string, time.Time, error) {
	return t.issue(&Claims{Role: RoleEditor, UMKMID: umkmID}, strconv.FormatInt(umkmID, 10))
}

func (t *TokenIssuer) issue(claims *Claims, subject string) (string, time.Time, error) {
	now := t.now()
	expiresAt := now.Add(t.ttl)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate parses the token and returns its claims
func (t *TokenIssuer) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return t.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Role != RoleAdmin && claims.Role != RoleEditor {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
