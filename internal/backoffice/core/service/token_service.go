package service

import (
	"fmt"
	"time"

	"logistics-backoffice/internal/backoffice/core/domain/models"
	"logistics-backoffice/internal/backoffice/core/myerrors"
	"logistics-backoffice/internal/config"

	"github.com/golang-jwt/jwt"
)

// Claims is the decoded content of a bearer token. The role is carried in the
// token itself so verification never needs a database round trip to know which
// kind of principal is being asserted.
type Claims struct {
	Subject   string
	Role      models.Role
	SubjectId int64
	ExpiresAt time.Time
}

// TokenService issues and verifies signed, expiring, role-scoped tokens.
// Signing key, algorithm and TTL are fixed at construction; there is no
// revocation list, a token dies only at expiry.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(cfg *config.Appconfig) (*TokenService, error) {
	method := jwt.GetSigningMethod(cfg.JwtAlgorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", cfg.JwtAlgorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC method", cfg.JwtAlgorithm)
	}

	return &TokenService{
		secret: []byte(cfg.JwtSecret),
		method: method,
		ttl:    time.Duration(cfg.TokenTTLMinutes) * time.Minute,
		now:    time.Now,
	}, nil
}

func (ts *TokenService) Issue(subject string, role models.Role, subjectId int64) (string, time.Time, error) {
	expiresAt := ts.now().Add(ts.ttl)

	token := jwt.NewWithClaims(ts.method, jwt.MapClaims{
		"sub":    subject,
		"role":   string(role),
		"exp":    expiresAt.Unix(),
		"sub_id": subjectId,
	})
	signed, err := token.SignedString(ts.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify checks signature and expiry and returns the decoded claims. It is
// pure: any failure, whatever the cause, comes back as ErrInvalidToken.
func (ts *TokenService) Verify(tokenString string) (Claims, error) {
	// Claims validation is done here against ts.now, not by the library
	// against the wall clock.
	parser := jwt.Parser{SkipClaimsValidation: true}
	token, err := parser.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != ts.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return ts.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, myerrors.ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, myerrors.ErrInvalidToken
	}

	subject, ok := mapClaims["sub"].(string)
	if !ok || subject == "" {
		return Claims{}, myerrors.ErrInvalidToken
	}

	roleString, ok := mapClaims["role"].(string)
	if !ok {
		return Claims{}, myerrors.ErrInvalidToken
	}
	role, err := models.ParseRole(roleString)
	if err != nil {
		return Claims{}, myerrors.ErrInvalidToken
	}

	expUnix, ok := mapClaims["exp"].(float64)
	if !ok {
		return Claims{}, myerrors.ErrInvalidToken
	}
	expiresAt := time.Unix(int64(expUnix), 0)
	if !ts.now().Before(expiresAt) {
		return Claims{}, myerrors.ErrInvalidToken
	}

	claims := Claims{
		Subject:   subject,
		Role:      role,
		ExpiresAt: expiresAt,
	}
	if subId, ok := mapClaims["sub_id"].(float64); ok {
		claims.SubjectId = int64(subId)
	}

	return claims, nil
}
