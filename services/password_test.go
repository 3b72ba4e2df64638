package services

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	password := "correct horse battery staple"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	if hash == password {
		t.Fatal("Hash must not equal the plain password")
	}
	if !strings.Contains(hash, "$") {
		t.Fatalf("Expected salt$hash encoding, got %q", hash)
	}

	ok, err := VerifyPassword(hash, password)
	if err != nil {
		t.Fatalf("Failed to verify password: %v", err)
	}
	if !ok {
		t.Error("Correct password did not verify")
	}
}

func TestVerifyWrongPassword(t *testing.T) {
	hash, err := HashPassword("original-password")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	ok, err := VerifyPassword(hash, "different-password")
	if err != nil {
		t.Fatalf("Unexpected verify error: %v", err)
	}
	if ok {
		t.Error("Wrong password verified")
	}
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	if first == second {
		t.Error("Two hashes of the same password must differ")
	}
}

func TestVerifyMalformedStoredPassword(t *testing.T) {
	if _, err := VerifyPassword("not-a-valid-encoding", "whatever"); err == nil {
		t.Error("Expected an error for a malformed stored password")
	}
}
