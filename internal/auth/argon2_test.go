package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cheapParams = &Argon2Params{
	Memory:      1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

func TestHashAndVerifyPassword(t *testing.T) {
	hasher := NewArgon2Hasher(cheapParams)

	hash, err := hasher.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := hasher.VerifyPassword("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.VerifyPassword("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashIsSaltedPerCall(t *testing.T) {
	hasher := NewArgon2Hasher(cheapParams)

	first, err := hasher.HashPassword("same password")
	require.NoError(t, err)
	second, err := hasher.HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifySurvivesParamsChange(t *testing.T) {
	hash, err := NewArgon2Hasher(cheapParams).HashPassword("s3cret")
	require.NoError(t, err)

	// The cost factors live in the hash itself, so a hasher built with
	// different params still verifies it.
	ok, err := NewArgon2Hasher(&Argon2Params{
		Memory:      2048,
		Iterations:  2,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}).VerifyPassword("s3cret", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyRejectsMalformedHashes(t *testing.T) {
	hasher := NewArgon2Hasher(cheapParams)

	for _, bad := range []string{
		"",
		"not a hash",
		"$argon2id$v=19$m=1024,t=1,p=1$saltonly",
		"$argon2id$v=1$m=1024,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaA",
	} {
		_, err := hasher.VerifyPassword("anything", bad)
		assert.Error(t, err, "hash %q", bad)
	}
}
