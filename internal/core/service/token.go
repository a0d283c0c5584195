package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token validation failures. All of them collapse to a 401 at the transport
// layer; the distinction is kept for logging and tests.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenSignature = errors.New("token signature invalid")
	ErrTokenExpired   = errors.New("token expired")
)

// TokenClaims is the signed claim set carried by a session token. The role
// claim is an issuance-time snapshot; authorization always uses the live user
// record, never this value.
type TokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256-signed session tokens. Tokens are
// self-contained: validation needs no store lookup, which also means a token
// stays valid until expiry even after the account is deactivated — the
// resolver catches that case by re-reading the user record.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService returns a TokenService signing with secret and issuing
// tokens valid for ttl. A non-positive ttl defaults to 24 hours.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token for the given user id and role.
func (s *TokenService) Issue(userID, role string) (string, error) {
	now := time.Now().UTC()
	claims := TokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate verifies the signature and expiry of a token and returns its
// claims. Failures are reported as one of the typed errors above.
func (s *TokenService) Validate(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	switch {
	case err == nil && parsed.Valid:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrTokenSignature
	default:
		return nil, ErrTokenMalformed
	}
}
