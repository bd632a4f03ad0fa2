package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "cryptox")
	if err != nil {
		panic(err)
	}
	SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"empty password", ""},
		{"unicode password", "пароль🔒密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)

			parts := strings.Split(hash, "$")
			require.Len(t, parts, 6, "PHC hash should have 6 parts")
			require.Equal(t, "argon2id", parts[1])
			require.Equal(t, "v=19", parts[2])
			require.Equal(t, "m=19456,t=2,p=1", parts[3])
			require.NotEmpty(t, parts[4], "salt should not be empty")
			require.NotEmpty(t, parts[5], "hash should not be empty")

			require.NoError(t, VerifyPassword(tt.password, hash))
		})
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	hash1, err := HashPassword("samepassword")
	require.NoError(t, err)
	hash2, err := HashPassword("samepassword")
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2, "hashes should differ due to unique salts")
	require.NoError(t, VerifyPassword("samepassword", hash1))
	require.NoError(t, VerifyPassword("samepassword", hash2))
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	for _, wrong := range []string{
		"wrong-password",
		"Correct-Password",
		"correct-password ",
		"",
		"correct-passwor",
		strings.Repeat("x", 10000),
	} {
		require.ErrorIs(t, VerifyPassword(wrong, hash), ErrPasswordMismatch, "password %q", wrong)
	}
}

func TestVerifyPassword_InvalidHashFormat(t *testing.T) {
	tests := []struct {
		name        string
		invalidHash string
	}{
		{"empty hash", ""},
		{"plain text", "hunter2"},
		{"missing parts", "$argon2id$v=19$m=19456"},
		{"malformed parameters", "$argon2id$v=19$invalid$c2FsdA$aGFzaA"},
		{"invalid base64 salt", "$argon2id$v=19$m=19456,t=2,p=1$!!!invalid!!!$aGFzaA"},
		{"invalid base64 hash", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!invalid!!!"},
		{"wrong version", "$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"truncated bcrypt", "$2b$10$short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassword("test-password", tt.invalidHash)
			require.Error(t, err)
		})
	}

	require.ErrorIs(t, VerifyPassword("x", "hunter2"), ErrUnknownHashFormat)
}

func TestVerifyPassword_LegacyBcrypt(t *testing.T) {
	raw, err := bcrypt.GenerateFromPassword([]byte("test123blub"), bcrypt.MinCost)
	require.NoError(t, err)
	hash := string(raw)
	require.True(t, strings.HasPrefix(hash, "$2a$"))

	require.NoError(t, VerifyPassword("test123blub", hash))
	require.ErrorIs(t, VerifyPassword("bulb321tset", hash), ErrPasswordMismatch)

	// PHP and flask-bcrypt style prefixes verify the same digest.
	for _, prefix := range []string{"$2b$", "$2y$"} {
		variant := prefix + strings.TrimPrefix(hash, "$2a$")
		require.NoError(t, VerifyPassword("test123blub", variant), prefix)
	}
}

func TestDummyHash(t *testing.T) {
	h1, err := DummyHash()
	require.NoError(t, err)
	h2, err := DummyHash()
	require.NoError(t, err)

	require.Equal(t, h1, h2, "dummy hash is computed once")
	require.True(t, strings.HasPrefix(h1, "$argon2id$"))
	require.ErrorIs(t, VerifyPassword("anything", h1), ErrPasswordMismatch)
}

func TestPepperIsPersisted(t *testing.T) {
	p1, err := getPepper()
	require.NoError(t, err)
	require.NotEmpty(t, p1)

	hash, err := HashPassword("pepper-test")
	require.NoError(t, err)

	// Reloading from the same file yields the same pepper, so hashes survive restarts.
	pepperMu.Lock()
	file := pepperFile
	pepperMu.Unlock()
	SetPepperPath(file)

	p2, err := getPepper()
	require.NoError(t, err)
	require.Equal(t, p1, p2)
	require.NoError(t, VerifyPassword("pepper-test", hash))
}
