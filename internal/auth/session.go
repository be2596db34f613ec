// Package auth verifies session cookies and resolves the current user.
package auth

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonathan/interview-prep/internal/types"
)

// Claims are the registered claims carried by a session token. The subject is
// the user's document ID in the users collection.
type Claims struct {
	jwt.RegisteredClaims
}

// UserStore reads user profiles.
type UserStore interface {
	Get(ctx context.Context, collection, id string, dest any) (bool, error)
}

// SessionService issues and verifies RS256 session tokens signed with the
// service-account private key. Tokens are bound to the service account
// (issuer) and the project (audience).
type SessionService struct {
	key        *rsa.PrivateKey
	issuer     string
	audience   string
	cookieName string
	users      UserStore
}

// NewSessionService parses the PEM-encoded private key and returns a session service.
// The key must already have real newlines.
func NewSessionService(projectID, clientEmail, privateKeyPEM, cookieName string, users UserStore) (*SessionService, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account private key: %w", err)
	}
	if cookieName == "" {
		cookieName = "session"
	}
	return &SessionService{
		key:        key,
		issuer:     clientEmail,
		audience:   projectID,
		cookieName: cookieName,
		users:      users,
	}, nil
}

// Issue signs a session token for uid valid for ttl.
func (s *SessionService) Issue(uid string, ttl time.Duration) (string, error) {
	if uid == "" {
		return "", fmt.Errorf("uid is required")
	}

	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify validates a session token and returns its claims.
func (s *SessionService) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return &s.key.PublicKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("session expired: %w", err)
		}
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("session token is not valid")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("session token has no subject")
	}
	return claims, nil
}

// CurrentUser returns the user behind the request's session cookie.
// A missing, invalid or expired session and an unknown user all yield
// (nil, nil); only a failing profile read is an error.
func (s *SessionService) CurrentUser(ctx context.Context, r *http.Request) (*types.User, error) {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	claims, err := s.Verify(cookie.Value)
	if err != nil {
		return nil, nil
	}

	if s.users == nil {
		return nil, fmt.Errorf("no user store configured")
	}

	var user types.User
	found, err := s.users.Get(ctx, types.UsersCollection, claims.Subject, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", claims.Subject, err)
	}
	if !found {
		return nil, nil
	}
	user.ID = claims.Subject
	return &user, nil
}
