package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_VerifiesAndSalts(t *testing.T) {
	t.Parallel()

	const password = "secret1"

	h1, err := HashPassword(password, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == password {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !CheckPassword(password, h1) {
		t.Fatalf("expected hash to verify against the original password")
	}

	h2, err := HashPassword(password, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected a fresh salt per hash, got identical digests")
	}
}

func TestHashPassword_DefaultCost(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("secret1", 0)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(h))
	if err != nil {
		t.Fatalf("bcrypt.Cost error: %v", err)
	}
	if cost != DefaultHashCost {
		t.Fatalf("cost mismatch: got %d want %d", cost, DefaultHashCost)
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if CheckPassword("secret2", h) {
		t.Fatalf("expected mismatch for a wrong password")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	if CheckPassword("secret1", "not-a-bcrypt-hash") {
		t.Fatalf("expected malformed hash to count as mismatch")
	}
}
