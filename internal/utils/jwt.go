package utils // package utils provides helpers shared by the binaries

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// HostToken is a signed bearer token for the host application together with
// its expiry.
type HostToken struct {
	Token string
	Exp   time.Time
}

// NewHostToken signs an HS256 JWT carrying the subject and role claims that
// middleware.HostAuth checks.  ttlMin must be positive.
func NewHostToken(secret, subject, role string, ttlMin int) (HostToken, error) {
	if secret == "" {
		return HostToken{}, errors.New("empty signing secret")
	}
	if ttlMin <= 0 {
		return HostToken{}, errors.New("token ttl must be positive")
	}
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return HostToken{}, err
	}
	return HostToken{Token: signed, Exp: exp}, nil
}
