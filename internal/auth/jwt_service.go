package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenExpiry is how long a session token stays valid.
const DefaultTokenExpiry = 24 * time.Hour

// ErrInvalidToken is the only verification failure. Malformed, forged and
// expired tokens are indistinguishable.
var ErrInvalidToken = errors.New("invalid token")

// Claims represents JWT claims. Only the user id is carried.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies stateless session tokens.
type JWTService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// Option customizes a JWTService.
type Option func(*JWTService)

// WithExpiry overrides DefaultTokenExpiry.
func WithExpiry(d time.Duration) Option {
	return func(s *JWTService) {
		if d > 0 {
			s.expiry = d
		}
	}
}

// WithClock replaces time.Now, for tests that need to move past expiry.
func WithClock(now func() time.Time) Option {
	return func(s *JWTService) {
		s.now = now
	}
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string, opts ...Option) *JWTService {
	s := &JWTService{
		secret: []byte(secret),
		expiry: DefaultTokenExpiry,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Expiry returns the validity window of issued tokens.
func (s *JWTService) Expiry() time.Duration {
	return s.expiry
}

// Issue signs a token for userID valid for the configured window.
func (s *JWTService) Issue(userID string) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature, algorithm and expiry and returns the claims.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
