package crypto

import (
	"strings"
	"testing"
)

// testParams keeps hashing fast in tests.
func testParams() HashParams {
	return HashParams{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

func TestHashSecretFormat(t *testing.T) {
	hash, err := HashSecret("correct-horse-battery-staple", DefaultHashParams())
	if err != nil {
		t.Fatalf("HashSecret() unexpected error: %v", err)
	}

	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Fatalf("HashSecret() expected 6 parts, got %d: %q", len(parts), hash)
	}
	if parts[1] != "argon2id" {
		t.Errorf("HashSecret() algorithm = %q, want %q", parts[1], "argon2id")
	}
	if parts[2] != "v=19" {
		t.Errorf("HashSecret() version = %q, want %q", parts[2], "v=19")
	}
	if parts[3] != "m=65536,t=3,p=2" {
		t.Errorf("HashSecret() params = %q, want %q", parts[3], "m=65536,t=3,p=2")
	}
}

func TestHashSecretEmpty(t *testing.T) {
	if _, err := HashSecret("", testParams()); err != ErrEmptySecret {
		t.Errorf("HashSecret() error = %v, want %v", err, ErrEmptySecret)
	}
}

func TestVerifySecret(t *testing.T) {
	hash, err := HashSecret("admin-secret", testParams())
	if err != nil {
		t.Fatalf("HashSecret() unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		secret string
		want   bool
	}{
		{"correct", "admin-secret", true},
		{"wrong", "admin-secreT", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VerifySecret(tt.secret, hash)
			if err != nil {
				t.Fatalf("VerifySecret() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("VerifySecret() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHashSecretSaltsDiffer(t *testing.T) {
	a, err := HashSecret("same", testParams())
	if err != nil {
		t.Fatalf("HashSecret() unexpected error: %v", err)
	}
	b, err := HashSecret("same", testParams())
	if err != nil {
		t.Fatalf("HashSecret() unexpected error: %v", err)
	}
	if a == b {
		t.Error("HashSecret() produced identical hashes for same secret (salt should differ)")
	}
}

func TestVerifySecretInvalidHash(t *testing.T) {
	tests := map[string]error{
		"invalid-hash-format":                    ErrInvalidHashFormat,
		"$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$a2V5":   ErrInvalidHashFormat,
		"$argon2id$v=16$m=1,t=1,p=1$c2FsdA$a2V5": ErrIncompatibleVersion,
		"$argon2id$v=19$m=1,t=1,p=1$c2FsdA$":     ErrInvalidHashFormat,
		"$argon2id$v=19$m=1,t=0,p=1$c2FsdA$a2V5": ErrInvalidHashFormat,
		"$argon2id$v=19$m=1,t=1,p=0$c2FsdA$a2V5": ErrInvalidHashFormat,
		"$argon2id$v=19$m=0,t=1,p=1$c2FsdA$a2V5": ErrInvalidHashFormat,
		"$argon2id$v=19$mem=1$c2FsdA$a2V5":       ErrInvalidHashFormat,
	}

	for encoded, want := range tests {
		if _, err := VerifySecret("secret", encoded); err != want {
			t.Errorf("VerifySecret(%q) error = %v, want %v", encoded, err, want)
		}
	}
}
