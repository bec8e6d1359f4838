// Package token issues and verifies the signed session tokens used as bearer
// credentials. Tokens are stateless: there is no server-side session store and
// no revocation list — a token stays valid until its expiry and logout is a
// client-side discard.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dayplan-app/planner-api/internal/core/domain"
)

// DefaultTTL is the token lifetime used when the codec is built without an
// explicit one.
const DefaultTTL = 24 * time.Hour

// Claims is the fixed identity payload embedded in every session token.
type Claims struct {
	UserID int64  `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with a process-wide HS256 secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec builds a Codec. An empty secret is a configuration error and must
// abort startup — tokens signed with a guessable key are worthless.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is empty")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}, nil
}

// Issue creates a signed token for the given identity. It cannot fail for a
// well-formed codec other than by an internal signing error.
func (c *Codec) Issue(userID int64, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify parses and validates a token. It returns domain.ErrTokenExpired when
// the token aged out and domain.ErrTokenInvalid for every other failure
// (tampered payload, bad signature, wrong algorithm, malformed input). The
// two cases map to distinct error codes at the API boundary.
func (c *Codec) Verify(tok string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid || claims.UserID == 0 {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
