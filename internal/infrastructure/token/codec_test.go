package token

import (
	"testing"
	"time"

	"github.com/inkwell/blog-platform/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    "user_1",
		Email: "alice@x.com",
		Role:  domain.RoleUser,
	}
}

func TestCodec_IssueAndVerify(t *testing.T) {
	codec, err := NewCodec("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewCodec returned error: %v", err)
	}

	signed, err := codec.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := codec.Verify(signed)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Subject != "user_1" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Email != "alice@x.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
	if claims.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
	if claims.ExpiresAt.Sub(claims.IssuedAt) != time.Hour {
		t.Fatalf("expected 1h ttl, got %s", claims.ExpiresAt.Sub(claims.IssuedAt))
	}
}

func TestCodec_ExpiredToken(t *testing.T) {
	codec, err := NewCodec("secret", time.Minute)
	if err != nil {
		t.Fatalf("NewCodec returned error: %v", err)
	}

	issuedAt := time.Now().UTC()
	codec.now = func() time.Time { return issuedAt }

	signed, err := codec.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Just inside the ttl.
	codec.now = func() time.Time { return issuedAt.Add(59 * time.Second) }
	if _, err := codec.Verify(signed); err != nil {
		t.Fatalf("expected valid before expiry, got %v", err)
	}

	// Past the ttl — no leeway.
	codec.now = func() time.Time { return issuedAt.Add(61 * time.Second) }
	if _, err := codec.Verify(signed); err == nil {
		t.Fatalf("expected expired token to fail verification")
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	issuer, _ := NewCodec("secret-a", time.Hour)
	verifier, _ := NewCodec("secret-b", time.Hour)

	signed, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(signed); err == nil {
		t.Fatalf("expected token signed with different secret to fail")
	}
}

func TestCodec_MalformedToken(t *testing.T) {
	codec, _ := NewCodec("secret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, err := codec.Verify(tok); err == nil {
			t.Fatalf("expected malformed token %q to fail", tok)
		}
	}
}

func TestCodec_TamperedToken(t *testing.T) {
	codec, _ := NewCodec("secret", time.Hour)

	signed, err := codec.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	tampered := signed[:len(signed)-2] + "xx"
	if _, err := codec.Verify(tampered); err == nil {
		t.Fatalf("expected tampered token to fail verification")
	}
}

func TestNewCodec_RequiresSecret(t *testing.T) {
	if _, err := NewCodec("", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestCodec_DefaultTTL(t *testing.T) {
	codec, err := NewCodec("secret", 0)
	if err != nil {
		t.Fatalf("NewCodec returned error: %v", err)
	}
	if codec.ttl != defaultTTL {
		t.Fatalf("expected default ttl %s, got %s", defaultTTL, codec.ttl)
	}
}
