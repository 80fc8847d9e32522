package jwt

import (
	"testing"
	"time"

	"go-medical-appointment/config"

	"github.com/google/uuid"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Minute})
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "dr.rina@example.com", 2)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != userID || claims.RoleID != 2 || claims.TokenID != tokenID {
		t.Errorf("claims = %+v", claims)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("TokenType = %s, want access", claims.TokenType)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewJWTService(config.JWTConfig{Secret: "secret-a", AccessExpiry: time.Minute})
	verifier := NewJWTService(config.JWTConfig{Secret: "secret-b", AccessExpiry: time.Minute})

	token, _, err := issuer.GenerateAccessToken(uuid.New(), "p@example.com", 3)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	if _, err := verifier.ValidateToken(token); err == nil {
		t.Fatal("ValidateToken() expected signature error")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: -time.Minute})

	token, _, err := svc.GenerateAccessToken(uuid.New(), "p@example.com", 3)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatal("ValidateToken() expected expiry error")
	}
}
