package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenTTL = time.Hour
	controllerRole  = "controller"
	tokenIssuer     = "heatgame"
)

// Domain errors for auth flows.
var (
	ErrAuthDisabled      = errors.New("auth disabled: no passphrase hash configured")
	ErrInvalidPassphrase = errors.New("invalid passphrase")
	ErrInvalidToken      = errors.New("invalid token")
	ErrMissingSigningKey = errors.New("signing key is empty")
)

// AuthConfig carries the operator passphrase hash and token settings.
// An empty PassphraseHash disables auth.
type AuthConfig struct {
	PassphraseHash string
	SigningKey     string
	TokenTTL       time.Duration
}

// AuthService exchanges the operator passphrase for a controller token.
type AuthService struct {
	hash []byte
	key  []byte
	ttl  time.Duration
	now  func() time.Time
}

func NewAuthService(cfg AuthConfig) *AuthService {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{
		hash: []byte(strings.TrimSpace(cfg.PassphraseHash)),
		key:  []byte(cfg.SigningKey),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Enabled reports whether intent endpoints require a token.
func (s *AuthService) Enabled() bool {
	return len(s.hash) > 0
}

// GenerateToken checks the passphrase and returns a signed controller token.
func (s *AuthService) GenerateToken(passphrase string) (string, error) {
	if !s.Enabled() {
		return "", ErrAuthDisabled
	}
	if len(s.key) == 0 {
		return "", ErrMissingSigningKey
	}
	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(passphrase)); err != nil {
		return "", ErrInvalidPassphrase
	}
	return s.issueToken()
}

// ParseToken validates a controller token and returns its role.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.key, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Role != controllerRole {
		return "", ErrInvalidToken
	}
	return claims.Role, nil
}

func (s *AuthService) issueToken() (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: controllerRole,
	})
	return token.SignedString(s.key)
}

// HashPassphrase produces the bcrypt hash stored in config as auth.passphrase_hash.
func HashPassphrase(passphrase string) (string, error) {
	if strings.TrimSpace(passphrase) == "" {
		return "", errors.New("passphrase is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash passphrase: %w", err)
	}
	return string(hash), nil
}
