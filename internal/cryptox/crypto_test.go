package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveCredentialKey_Deterministic(t *testing.T) {
	salt := []byte("salt-salt-salt")

	k1 := DeriveCredentialKey([]byte("password"), salt)
	k2 := DeriveCredentialKey([]byte("password"), salt)
	assert.Equal(t, k1, k2)
	assert.Len(t, k1, 32)

	k3 := DeriveCredentialKey([]byte("other"), salt)
	assert.NotEqual(t, k1, k3)

	k4 := DeriveCredentialKey([]byte("password"), []byte("other-salt-aaaa"))
	assert.NotEqual(t, k1, k4)
}

func TestMakeVerifier(t *testing.T) {
	v1 := MakeVerifier([]byte("key"))
	v2 := MakeVerifier([]byte("key"))
	assert.Equal(t, v1, v2)
	assert.Len(t, v1, 32)
	assert.NotEqual(t, v1, MakeVerifier([]byte("other")))
}
