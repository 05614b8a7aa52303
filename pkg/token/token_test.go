package token

import (
	"testing"
)

const testSecret = "test-secret-key"

func TestGenerateAndValidateJWT(t *testing.T) {
	roles := []string{"Member", "Treasurer"}
	tokenString, err := GenerateJWT(42, "alice@pcm.com", "Alice Tran", roles, testSecret, 60)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := ValidateJWT(tokenString, testSecret)
	if err != nil {
		t.Fatalf("ValidateJWT failed: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "alice@pcm.com" {
		t.Errorf("Email = %s, want alice@pcm.com", claims.Email)
	}
	if claims.FullName != "Alice Tran" {
		t.Errorf("FullName = %s, want Alice Tran", claims.FullName)
	}
	if len(claims.Roles) != 2 {
		t.Fatalf("Roles = %v, want two entries", claims.Roles)
	}
	if !claims.HasRole("Treasurer") {
		t.Error("HasRole(Treasurer) = false, want true")
	}
	if claims.HasRole("Admin") {
		t.Error("HasRole(Admin) = true, want false")
	}
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	tokenString, err := GenerateJWT(1, "a@b.com", "A", []string{"Member"}, testSecret, 60)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	if _, err := ValidateJWT(tokenString, "another-secret"); err == nil {
		t.Fatal("ValidateJWT accepted a token signed with a different secret")
	}
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	tokenString, err := GenerateJWT(1, "a@b.com", "A", []string{"Member"}, testSecret, -5)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	if _, err := ValidateJWT(tokenString, testSecret); err == nil {
		t.Fatal("ValidateJWT accepted an expired token")
	}
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
	if _, err := GenerateJWT(1, "a@b.com", "A", nil, "", 60); err == nil {
		t.Fatal("GenerateJWT accepted an empty secret")
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	if _, err := ValidateJWT("not.a.token", testSecret); err == nil {
		t.Fatal("ValidateJWT accepted a malformed token")
	}
	if _, err := ValidateJWT("", testSecret); err == nil {
		t.Fatal("ValidateJWT accepted an empty token")
	}
}
