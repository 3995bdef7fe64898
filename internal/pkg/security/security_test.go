package security

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("64dbeef064dbeef064dbeef0", true)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "64dbeef064dbeef064dbeef0" {
		t.Errorf("UserID = %q", claims.UserID)
	}
	if !claims.IsAdmin {
		t.Error("IsAdmin should round-trip")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestExtractSignature(t *testing.T) {
	token, err := GenerateToken("u1", false)
	if err != nil {
		t.Fatal(err)
	}
	sig, err := ExtractSignature(token)
	if err != nil || sig == "" {
		t.Fatalf("ExtractSignature = %q, %v", sig, err)
	}

	if _, err := ExtractSignature("onlyonepart"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret123" {
		t.Error("hash must not equal plaintext")
	}
	if err := CheckPasswordHash("secret123", hash); err != nil {
		t.Errorf("CheckPasswordHash: %v", err)
	}
	if err := CheckPasswordHash("wrong", hash); err == nil {
		t.Error("expected mismatch error")
	}
}
