// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"mimapa/config"
	"mimapa/internal/domain/entity"
	"mimapa/internal/domain/service"
	"mimapa/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// The secret and algorithm are deployment configuration shared by every decode.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	method, err := signingMethod(cfg.JWT.Algorithm)
	if err != nil {
		return nil, err
	}

	ttl := cfg.JWT.TTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	return &jwtService{
		secret: []byte(cfg.JWT.Secret),
		method: method,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func signingMethod(name string) (jwt.SigningMethod, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	default:
		return nil, errors.Errorf("unsupported jwt algorithm: %s", name)
	}
}

// Issue creates a signed credential with sub, iat and exp claims.
func (s *jwtService) Issue(subject string) (*entity.IssuedToken, error) {
	if subject == "" {
		return nil, errors.New("token subject must not be empty")
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}

	return &entity.IssuedToken{AccessToken: signed, ExpiresAt: time.Unix(expiresAt.Unix(), 0).UTC()}, nil
}

// ParseSubject verifies the credential and returns the sub claim.
func (s *jwtService) ParseSubject(rawToken string) (string, error) {
	claims, err := s.parse(rawToken)
	if err != nil {
		return "", err
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", service.ErrCredentialInvalid
	}

	return sub, nil
}

// ExtractProvenance verifies the credential and snapshots iat, exp and the raw string.
func (s *jwtService) ExtractProvenance(rawToken string) (*entity.TokenProvenance, error) {
	claims, err := s.parse(rawToken)
	if err != nil {
		return nil, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, service.ErrCredentialInvalid
	}

	issuedAt := s.now().UTC()
	if _, present := claims["iat"]; present {
		iat, err := claims.GetIssuedAt()
		if err != nil || iat == nil {
			return nil, service.ErrCredentialInvalid
		}
		issuedAt = iat.UTC()
	}

	return &entity.TokenProvenance{
		IssuedAt:  issuedAt,
		ExpiresAt: exp.UTC(),
		RawToken:  rawToken,
	}, nil
}

// TTL returns the configured credential lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}

// parse collapses every verification failure into ErrCredentialInvalid.
func (s *jwtService) parse(rawToken string) (jwt.MapClaims, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, service.ErrCredentialInvalid
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, service.ErrCredentialInvalid
	}

	return claims, nil
}
