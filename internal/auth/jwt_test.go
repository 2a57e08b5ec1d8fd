package auth

import (
	"testing"

	"github.com/google/uuid"
)

func TestJWTFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	userID := uuid.New().String()
	email := "test@example.com"

	token, err := GenerateToken(userID, email, RoleCustomer)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	extractedUserID, extractedEmail, extractedRole, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}

	if extractedUserID != userID {
		t.Fatalf("expected userID %s, got %s", userID, extractedUserID)
	}
	if extractedEmail != email {
		t.Fatalf("expected email %s, got %s", email, extractedEmail)
	}
	if extractedRole != RoleCustomer {
		t.Fatalf("expected role %s, got %s", RoleCustomer, extractedRole)
	}
}

func TestGenerateTokenEmptyUserID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, err := GenerateToken("", "test@example.com", RoleCustomer); err == nil {
		t.Fatalf("expected error for empty userID")
	}
}
