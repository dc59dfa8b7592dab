package auth

import (
	"strings"
	"testing"
)

func TestArgon2Hasher_RoundTrip(t *testing.T) {
	h := NewArgon2Hasher()

	encoded, err := h.Hash("s3cret-passw0rd")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$") {
		t.Fatalf("expected PHC-encoded argon2id string, got %q", encoded)
	}
	if strings.Contains(encoded, "s3cret-passw0rd") {
		t.Fatalf("plaintext leaked into encoded hash")
	}

	if !h.Verify("s3cret-passw0rd", encoded) {
		t.Fatalf("Verify rejected the correct password")
	}
	if h.Verify("wrong-password", encoded) {
		t.Fatalf("Verify accepted a wrong password")
	}
}

func TestArgon2Hasher_SaltUniqueness(t *testing.T) {
	h := NewArgon2Hasher()

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("first Hash: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("second Hash: %v", err)
	}

	if first == second {
		t.Fatalf("two hashes of the same password are identical; salt reused")
	}
	if !h.Verify("same-password", first) || !h.Verify("same-password", second) {
		t.Fatalf("both hashes should verify against the password")
	}
}

func TestArgon2Hasher_EmptyPassword(t *testing.T) {
	h := NewArgon2Hasher()
	if _, err := h.Hash(""); err == nil {
		t.Fatalf("expected error hashing empty password")
	}
}

func TestArgon2Hasher_MalformedHash(t *testing.T) {
	h := NewArgon2Hasher()

	malformed := []string{
		"",
		"not-a-hash",
		"$argon2id$v=19$m=65536,t=1,p=4$short",              // too few parts
		"$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$ZGlnZXN0",      // wrong algorithm
		"$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$ZGlnZXN0",    // wrong version
		"$argon2id$v=19$m=65536,t=1,p=4$!!notb64!!$ZGlnZXN0", // bad salt encoding
		"$argon2id$v=19$m=65536,t=1,p=999$c2FsdA$ZGlnZXN0",  // parallelism out of range
	}
	for _, enc := range malformed {
		if h.Verify("anything", enc) {
			t.Fatalf("Verify accepted malformed hash %q", enc)
		}
	}
}
