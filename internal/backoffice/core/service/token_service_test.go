package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"logistics-backoffice/internal/backoffice/core/domain/models"
	"logistics-backoffice/internal/backoffice/core/myerrors"
	"logistics-backoffice/internal/config"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	ts, err := NewTokenService(&config.Appconfig{
		JwtSecret:       "test-secret",
		JwtAlgorithm:    "HS256",
		TokenTTLMinutes: 60,
	})
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return ts
}

func TestTokenRoundTrip(t *testing.T) {
	ts := newTestTokenService(t)

	token, expiresAt, err := ts.Issue("admin@example.com", models.RoleAdmin, 7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if time.Until(expiresAt) > 61*time.Minute {
		t.Errorf("expiry too far in the future: %v", expiresAt)
	}

	claims, err := ts.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "admin@example.com" {
		t.Errorf("subject = %q, want admin@example.com", claims.Subject)
	}
	if claims.Role != models.RoleAdmin {
		t.Errorf("role = %q, want admin", claims.Role)
	}
	if claims.SubjectId != 7 {
		t.Errorf("subject id = %d, want 7", claims.SubjectId)
	}
}

func TestTokenExpired(t *testing.T) {
	ts := newTestTokenService(t)

	issued := time.Now()
	ts.now = func() time.Time { return issued }
	token, _, err := ts.Issue("driver@example.com", models.RoleDriver, 1)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	t.Run("within ttl", func(t *testing.T) {
		ts.now = func() time.Time { return issued.Add(30 * time.Minute) }
		if _, err := ts.Verify(token); err != nil {
			t.Errorf("Verify within ttl: %v", err)
		}
	})

	t.Run("at expiry", func(t *testing.T) {
		ts.now = func() time.Time { return issued.Add(60 * time.Minute) }
		if _, err := ts.Verify(token); !errors.Is(err, myerrors.ErrInvalidToken) {
			t.Errorf("Verify at expiry = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("past expiry", func(t *testing.T) {
		ts.now = func() time.Time { return issued.Add(24 * time.Hour) }
		if _, err := ts.Verify(token); !errors.Is(err, myerrors.ErrInvalidToken) {
			t.Errorf("Verify past expiry = %v, want ErrInvalidToken", err)
		}
	})
}

func TestTokenTampered(t *testing.T) {
	ts := newTestTokenService(t)

	token, _, err := ts.Issue("admin@example.com", models.RoleAdmin, 1)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	t.Run("garbage", func(t *testing.T) {
		if _, err := ts.Verify("not.a.token"); !errors.Is(err, myerrors.ErrInvalidToken) {
			t.Errorf("Verify = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("broken signature", func(t *testing.T) {
		if !strings.ContainsRune(token, '.') {
			t.Fatalf("unexpected token shape: %q", token)
		}
		if _, err := ts.Verify(token + "aaaa"); !errors.Is(err, myerrors.ErrInvalidToken) {
			t.Errorf("Verify = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewTokenService(&config.Appconfig{
			JwtSecret:       "a-different-secret",
			JwtAlgorithm:    "HS256",
			TokenTTLMinutes: 60,
		})
		if err != nil {
			t.Fatalf("NewTokenService: %v", err)
		}
		foreign, _, err := other.Issue("admin@example.com", models.RoleAdmin, 1)
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		if _, err := ts.Verify(foreign); !errors.Is(err, myerrors.ErrInvalidToken) {
			t.Errorf("Verify = %v, want ErrInvalidToken", err)
		}
	})
}

func TestNewTokenServiceRejectsNonHMAC(t *testing.T) {
	for _, alg := range []string{"RS256", "none", "bogus"} {
		t.Run(alg, func(t *testing.T) {
			_, err := NewTokenService(&config.Appconfig{
				JwtSecret:       "test-secret",
				JwtAlgorithm:    alg,
				TokenTTLMinutes: 60,
			})
			if err == nil {
				t.Errorf("NewTokenService accepted algorithm %q", alg)
			}
		})
	}
}
