package hash

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("pw123456")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "pw123456" {
		t.Fatalf("expected password to be hashed")
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Fatalf("unexpected digest format: %s", digest)
	}

	if !h.Verify("pw123456", digest) {
		t.Fatalf("expected digest to verify against original password")
	}
	if h.Verify("wrong-password", digest) {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestBcryptHasher_SaltedPerCall(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	a, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct digests for the same password (random salt)")
	}
}

func TestBcryptHasher_EmptyInput(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	if _, err := h.Hash(""); err == nil {
		t.Fatalf("expected error for empty password")
	}
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("expected false for malformed digest")
	}
	if h.Verify("anything", "") {
		t.Fatalf("expected false for empty digest")
	}
}

func TestBcryptHasher_CostClamped(t *testing.T) {
	h := NewBcryptHasher(999)
	digest, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		t.Fatalf("Cost returned error: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}
