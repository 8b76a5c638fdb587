package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/heartmarshall/moodlog-backend/internal/domain"
)

const (
	testSecret = "test-secret-at-least-32-chars-long-for-security"
	testIssuer = "moodlog-test"
)

func TestJWTManager_GenerateAndValidate_Success(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)
	userID := uuid.New()

	token, err := manager.GenerateAccessToken(userID, domain.UserRoleUser)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	id, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken failed: %v", err)
	}
	if id.UserID != userID {
		t.Errorf("expected userID %s, got %s", userID, id.UserID)
	}
	if id.Role != domain.UserRoleUser {
		t.Errorf("expected role 'user', got %q", id.Role)
	}
	if id.IsAdmin() {
		t.Error("plain user must not be admin")
	}
}

func TestJWTManager_GenerateAndValidate_AdminRole(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)

	token, err := manager.GenerateAccessToken(uuid.New(), domain.UserRoleAdmin)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	id, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken failed: %v", err)
	}
	if !id.IsAdmin() {
		t.Errorf("expected admin identity, got role %q", id.Role)
	}
}

func TestJWTManager_IssueAccessToken_CustomTTL(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)
	issued := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return issued }

	token, err := manager.IssueAccessToken(uuid.New(), domain.UserRoleUser, 24*time.Hour)
	if err != nil {
		t.Fatalf("IssueAccessToken failed: %v", err)
	}

	// Still valid after the default TTL has passed.
	manager.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := manager.ValidateAccessToken(token); err != nil {
		t.Fatalf("expected token to be valid after 2h, got %v", err)
	}

	manager.now = func() time.Time { return issued.Add(25 * time.Hour) }
	if _, err := manager.ValidateAccessToken(token); err == nil {
		t.Fatal("expected token to be expired after 25h")
	}
}

func TestJWTManager_IssueAccessToken_InvalidInput(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)

	if _, err := manager.IssueAccessToken(uuid.Nil, domain.UserRoleUser, 0); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("nil user: expected ErrValidation, got %v", err)
	}
	if _, err := manager.IssueAccessToken(uuid.New(), domain.UserRole("root"), 0); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("unknown role: expected ErrValidation, got %v", err)
	}
}

func TestJWTManager_ValidateAccessToken_Expired(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, -1*time.Hour)

	token, err := manager.GenerateAccessToken(uuid.New(), domain.UserRoleUser)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	_, err = manager.ValidateAccessToken(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected expiry error, got: %v", err)
	}
}

func TestJWTManager_ValidateAccessToken_InvalidSignature(t *testing.T) {
	manager1 := NewJWTManager(testSecret, testIssuer, 15*time.Minute)
	manager2 := NewJWTManager("different-secret-32-chars-long-for-security!!", testIssuer, 15*time.Minute)

	token, err := manager1.GenerateAccessToken(uuid.New(), domain.UserRoleUser)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := manager2.ValidateAccessToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for invalid signature, got %v", err)
	}
}

func TestJWTManager_ValidateAccessToken_Malformed(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)

	malformedTokens := []string{
		"not.a.jwt",
		"invalid-token",
		"header.payload",
	}

	for _, token := range malformedTokens {
		if _, err := manager.ValidateAccessToken(token); err == nil {
			t.Errorf("expected error for malformed token %q, got nil", token)
		}
	}
}

func TestJWTManager_ValidateAccessToken_WrongIssuer(t *testing.T) {
	manager1 := NewJWTManager(testSecret, testIssuer, 15*time.Minute)
	manager2 := NewJWTManager(testSecret, "wrong-issuer", 15*time.Minute)

	token, err := manager1.GenerateAccessToken(uuid.New(), domain.UserRoleUser)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	_, err = manager2.ValidateAccessToken(token)
	if err == nil {
		t.Fatal("expected error for wrong issuer, got nil")
	}
	if !errors.Is(err, jwt.ErrTokenInvalidIssuer) {
		t.Errorf("expected invalid issuer error, got: %v", err)
	}
}

func TestJWTManager_ValidateAccessToken_UnknownRole(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: "superuser",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = manager.ValidateAccessToken(token)
	if err == nil || !strings.Contains(err.Error(), "invalid role") {
		t.Fatalf("expected invalid role error, got %v", err)
	}
}

func TestJWTManager_ValidateAccessToken_MissingRoleDefaultsToUser(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	id, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Role != domain.UserRoleUser {
		t.Errorf("role = %q, want user", id.Role)
	}
}

func TestJWTManager_ValidateAccessToken_EmptyString(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)

	_, err := manager.ValidateAccessToken("")
	if err == nil {
		t.Fatal("expected error for empty token, got nil")
	}
	if !strings.Contains(err.Error(), "empty") {
		t.Errorf("expected 'empty' error, got: %v", err)
	}
}

func TestJWTManager_ValidateToken_Adapter(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)
	userID := uuid.New()

	token, err := manager.GenerateAccessToken(userID, domain.UserRoleAdmin)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	gotID, role, err := manager.ValidateToken(context.Background(), token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if gotID != userID || role != "admin" {
		t.Errorf("got (%s, %q), want (%s, admin)", gotID, role, userID)
	}

	if _, _, err := manager.ValidateToken(context.Background(), "garbage"); err == nil {
		t.Error("expected error for garbage token")
	}
}
