package jwtx

import "errors"

// Verifier validates a token and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrInvalidFormat     = errors.New("jwtx: invalid token format")
	ErrSignatureMismatch = errors.New("jwtx: signature mismatch")
	ErrExpired           = errors.New("jwtx: token expired")
	ErrInvalidClaims     = errors.New("jwtx: invalid claims")

	ErrWeakSecret = errors.New("jwtx: signing secret missing or too short")
)
