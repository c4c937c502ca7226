package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidCredentials is returned for a bad username/password pair
var ErrInvalidCredentials = errors.New("incorrect username or password")

// ErrInvalidToken is returned for a missing, malformed, expired or
// otherwise unverifiable bearer token
var ErrInvalidToken = errors.New("invalid authentication credentials")

// Credentials verifies a username/password pair. Injectable so the
// authentication policy is swappable without touching the HTTP layer.
type Credentials interface {
	Verify(username, password string) bool
}

// StaticCredentials is a single fixed credential pair
type StaticCredentials struct {
	username string
	password string
}

// NewStaticCredentials creates a single-entry credential store
func NewStaticCredentials(username, password string) *StaticCredentials {
	return &StaticCredentials{username: username, password: password}
}

// Verify compares both fields in constant time
func (c *StaticCredentials) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.password)) == 1
	return userOK && passOK
}

// Service issues and verifies signed bearer tokens
type Service struct {
	secret []byte
	ttl    time.Duration
	creds  Credentials
	now    func() time.Time // swappable in tests
}

// NewService creates an auth service with the given signing secret,
// token lifetime and credential store
func NewService(secret string, ttl time.Duration, creds Credentials) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		creds:  creds,
		now:    time.Now,
	}
}

// Login checks credentials and returns a signed token on success
func (s *Service) Login(username, password string) (string, error) {
	if !s.creds.Verify(username, password) {
		return "", ErrInvalidCredentials
	}
	return s.CreateToken(username)
}

// CreateToken issues an HS256 token with subject and expiry claims
func (s *Service) CreateToken(subject string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates the signature, subject and expiry of a token and
// returns the subject. Any failure maps to ErrInvalidToken.
func (s *Service) VerifyToken(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))

	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
