package apikeys

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKey(t *testing.T) {
	t.Run("KeysCarryPrefixAndDiffer", func(t *testing.T) {
		a := GenerateKey()
		b := GenerateKey()

		assert.True(t, strings.HasPrefix(a, keyPrefix))
		assert.True(t, strings.HasPrefix(b, keyPrefix))
		assert.NotEqual(t, a, b)
		assert.Greater(t, len(a), 40)
	})
}

func TestHashKey(t *testing.T) {
	t.Run("DeterministicHexDigest", func(t *testing.T) {
		key := GenerateKey()
		assert.Equal(t, HashKey(key), HashKey(key))
		assert.Len(t, HashKey(key), 64)
	})

	t.Run("DifferentKeysDifferentDigests", func(t *testing.T) {
		assert.NotEqual(t, HashKey("pk_one"), HashKey("pk_two"))
	})
}

func TestMaskKey(t *testing.T) {
	t.Run("RevealsOnlyThePrefix", func(t *testing.T) {
		key := GenerateKey()
		masked := MaskKey(key)

		assert.True(t, strings.HasPrefix(masked, key[:7]))
		assert.NotContains(t, masked, key[10:])
	})
}
