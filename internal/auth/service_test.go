package auth

import (
	"errors"
	"testing"

	appcfg "github.com/FireBushtree/stronger-body/internal/config"
)

func testConfig() *appcfg.Config {
	return &appcfg.Config{
		AuthMode:      "dev",
		JWTSecret:     "test-secret",
		JWTIssuer:     "stronger-body",
		JWTTTLMinutes: 60,
	}
}

func TestSignInDevRoundTrip(t *testing.T) {
	service := NewService(testConfig())

	resp, err := service.SignInDev()
	if err != nil {
		t.Fatalf("SignInDev failed: %v", err)
	}
	if resp.TokenType != "Bearer" {
		t.Errorf("expected Bearer, got %s", resp.TokenType)
	}
	if resp.ExpiresIn != 3600 {
		t.Errorf("expected 3600s TTL, got %d", resp.ExpiresIn)
	}

	sub, err := service.VerifyJWT(resp.AccessToken)
	if err != nil {
		t.Fatalf("VerifyJWT failed: %v", err)
	}
	if sub != "dev-user" {
		t.Errorf("expected dev-user subject, got %s", sub)
	}
}

func TestVerifyJWTGarbage(t *testing.T) {
	service := NewService(testConfig())

	if _, err := service.VerifyJWT("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyJWTWrongSecret(t *testing.T) {
	issuer := NewService(testConfig())
	resp, err := issuer.SignInDev()
	if err != nil {
		t.Fatalf("SignInDev failed: %v", err)
	}

	other := testConfig()
	other.JWTSecret = "different-secret"
	verifier := NewService(other)

	if _, err := verifier.VerifyJWT(resp.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("a token signed with another secret must be rejected, got %v", err)
	}
}
