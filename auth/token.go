package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"restaurant-api/models"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = 6 * time.Hour

var (
	// ErrTokenExpired means the token was well-formed and correctly
	// signed but its expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers everything else: malformed tokens, wrong
	// signing method, signature mismatch.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims is the statically-defined identity carried by a token. Role may be
// empty for legacy identities.
type Claims struct {
	UserID   uint            `json:"user_id"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies bearer tokens with a symmetric key.
// The secret is injected at construction so tests can swap it; it is never
// rotated mid-process.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue creates a signed HS256 token for the given identity, expiring
// after the configured window.
func (s *TokenService) Issue(userID uint, username string, role models.UserRole) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies a token string and returns its claims. Failures are one of
// two kinds: ErrTokenExpired or ErrTokenInvalid. The raw token is never
// included in the returned error.
func (s *TokenService) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
