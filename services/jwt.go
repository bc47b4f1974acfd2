package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type IJWTService interface {
	GenerateToken(subject string) (string, error)
	VerifySubject(tokenStr string) (string, error)
}

// JWTService signs and verifies the stateless session credential. There is
// no server-side session or revocation list: signature plus expiry is the
// whole check. Now is injectable so expiry behavior is testable without
// wall-clock sleeps.
type JWTService struct {
	Secret    []byte
	Issuer    string
	AccessTTL time.Duration
	Now       func() time.Time
}

func NewJWTService(secret []byte, issuer string, accessTtl time.Duration) *JWTService {
	return &JWTService{
		Secret:    secret,
		Issuer:    issuer,
		AccessTTL: accessTtl,
		Now:       time.Now,
	}
}

func (j *JWTService) GenerateToken(subject string) (string, error) {
	if len(j.Secret) == 0 {
		return "", errors.New("JWT secret is not configured")
	}
	now := j.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"iss": j.Issuer,
		"iat": now.Unix(),
		"exp": now.Add(j.AccessTTL).Unix(),
	})
	return token.SignedString(j.Secret)
}

// VerifySubject returns the token's subject, or an error for any
// structural, signature, or expiry failure. Callers get one undifferentiated
// invalid outcome: an expired token and a forged one look the same.
func (j *JWTService) VerifySubject(tokenStr string) (string, error) {
	if len(j.Secret) == 0 {
		return "", errors.New("JWT secret is not configured")
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.Secret, nil
	}, jwt.WithTimeFunc(j.Now), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token")
	}
	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", errors.New("invalid token")
	}
	return subject, nil
}
