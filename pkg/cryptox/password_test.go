package cryptox

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	SetPepper("test-pepper")
	os.Exit(m.Run())
}

func TestHashPasswordPHCFormat(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 6)
	require.Equal(t, "argon2id", parts[1])
	require.Equal(t, "v=19", parts[2])
	require.Equal(t, "m=19456,t=2,p=1", parts[3])
	require.NotEmpty(t, parts[4])
	require.NotEmpty(t, parts[5])
}

func TestHashPasswordUsesFreshSalt(t *testing.T) {
	h1, err := HashPassword("samepassword")
	require.NoError(t, err)
	h2, err := HashPassword("samepassword")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2)
	require.NoError(t, VerifyPassword("samepassword", h1))
	require.NoError(t, VerifyPassword("samepassword", h2))
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"exact match", "correct-password", nil},
		{"case difference", "Correct-Password", ErrPasswordMismatch},
		{"trailing space", "correct-password ", ErrPasswordMismatch},
		{"empty", "", ErrPasswordMismatch},
		{"prefix", "correct-passwor", ErrPasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassword(tt.password, hash)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	for name, hash := range map[string]string{
		"empty":           "",
		"wrong algorithm": "$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"missing parts":   "$argon2id$v=19$m=19456",
		"bad parameters":  "$argon2id$v=19$invalid$c2FsdA$aGFzaA",
		"bad salt":        "$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA",
		"bad hash":        "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!",
		"wrong version":   "$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
	} {
		t.Run(name, func(t *testing.T) {
			err := VerifyPassword("whatever", hash)
			require.ErrorIs(t, err, ErrMalformedHash)
			require.NotErrorIs(t, err, ErrPasswordMismatch)
		})
	}
}

func TestVerifyPasswordRejectsUnsafeParameters(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	params := fmt.Sprintf("m=%d,t=%d,p=%d", memory, iterations, parallelism)
	require.Contains(t, hash, params)

	for name, replacement := range map[string]string{
		"zero parallelism": fmt.Sprintf("m=%d,t=%d,p=0", memory, iterations),
		"zero iterations":  fmt.Sprintf("m=%d,t=0,p=%d", memory, parallelism),
		"zero memory":      fmt.Sprintf("m=0,t=%d,p=%d", iterations, parallelism),
		"huge memory":      fmt.Sprintf("m=4294967295,t=%d,p=%d", iterations, parallelism),
		"many iterations":  fmt.Sprintf("m=%d,t=1000000,p=%d", memory, parallelism),
	} {
		t.Run(name, func(t *testing.T) {
			tampered := strings.Replace(hash, params, replacement, 1)
			require.NotPanics(t, func() {
				err = VerifyPassword("secret", tampered)
			})
			require.ErrorIs(t, err, ErrMalformedHash)
		})
	}

	t.Run("short hash", func(t *testing.T) {
		parts := strings.Split(hash, "$")
		parts[5] = "aGFzaA"
		err := VerifyPassword("secret", strings.Join(parts, "$"))
		require.ErrorIs(t, err, ErrMalformedHash)
	})
}

func TestPepperChangesHash(t *testing.T) {
	hash, err := HashPassword("peppered")
	require.NoError(t, err)

	SetPepper("another-pepper")
	t.Cleanup(func() { SetPepper("test-pepper") })

	require.ErrorIs(t, VerifyPassword("peppered", hash), ErrPasswordMismatch)
}

func TestLoadPepperGeneratesThenReuses(t *testing.T) {
	t.Cleanup(func() { SetPepper("test-pepper") })

	path := filepath.Join(t.TempDir(), "nested", "pepper")

	require.NoError(t, LoadPepper(path))
	first := GetPepper()
	require.NotEmpty(t, first)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, first, string(data))

	SetPepper("")
	require.NoError(t, LoadPepper(path))
	require.Equal(t, first, GetPepper())
}

func TestLoadPepperRejectsEmptyFile(t *testing.T) {
	t.Cleanup(func() { SetPepper("test-pepper") })

	path := filepath.Join(t.TempDir(), "pepper")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))
	require.Error(t, LoadPepper(path))
}
