package jwtx

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the shortest HMAC secret NewCodec accepts.
const MinSecretLength = 32

// Codec issues and verifies HS256 session tokens. It holds no per-token
// state; validity is decided by the signature and the exp claim alone.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// CodecOption customises a Codec.
type CodecOption func(*Codec)

// WithTTL overrides SessionTTL.
func WithTTL(ttl time.Duration) CodecOption {
	return func(c *Codec) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock sets the time source used for iat/exp stamping and expiry checks.
func WithClock(now func() time.Time) CodecOption {
	return func(c *Codec) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCodec creates a codec for secret. A missing or short secret is an error
// so the service refuses to start rather than sign with something guessable.
func NewCodec(secret []byte, opts ...CodecOption) (*Codec, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}

	c := &Codec{
		secret: append([]byte(nil), secret...),
		ttl:    SessionTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	// jwt rejects now >= exp. Tokens stay valid through their exp second,
	// so compare whole seconds with one second of leeway: now <= exp.
	c.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(time.Second),
		jwt.WithTimeFunc(func() time.Time { return c.now().Truncate(time.Second) }),
	)
	return c, nil
}

// TTL returns the lifetime stamped onto issued tokens.
func (c *Codec) TTL() time.Duration { return c.ttl }

// Issue stamps iat=now and exp=now+TTL onto claims and signs them. The
// returned time is the expiry written into the token.
func (c *Codec) Issue(claims Claims) (string, time.Time, error) {
	if claims.Email == "" {
		return "", time.Time{}, ErrInvalidClaims
	}

	now := c.now().UTC().Truncate(time.Second)
	exp := now.Add(c.ttl)

	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(exp)

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify checks the token and returns its claims. A token expires once exp
// is strictly before the current second. The error is always one of
// ErrInvalidFormat, ErrSignatureMismatch, ErrExpired or ErrInvalidClaims;
// callers should treat any of them as "not authenticated".
func (c *Codec) Verify(token string) (Claims, error) {
	if strings.Count(token, ".") != 2 {
		return Claims{}, ErrInvalidFormat
	}

	claims := &Claims{}
	parsed, err := c.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}
	if !parsed.Valid {
		return Claims{}, ErrInvalidClaims
	}
	if err := claims.validate(); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}

// mapParseError folds jwt errors onto the codec's error set. Signature
// checks run before claim validation, so a tampered expired token reports
// a signature mismatch.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrInvalidFormat
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrSignatureMismatch
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	default:
		return ErrInvalidClaims
	}
}
