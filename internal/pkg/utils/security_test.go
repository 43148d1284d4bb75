package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	t.Run("Hashes and verifies a password", func(t *testing.T) {
		hash, err := HashPassword("s3cret-password")
		assert.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "s3cret-password", hash)

		assert.True(t, CheckPasswordHash("s3cret-password", hash))
	})

	t.Run("Same password hashes to different values", func(t *testing.T) {
		first, err := HashPassword("s3cret-password")
		assert.NoError(t, err)
		second, err := HashPassword("s3cret-password")
		assert.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("Empty password is rejected", func(t *testing.T) {
		_, err := HashPassword("")
		assert.Error(t, err)
	})
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	assert.NoError(t, err)

	t.Run("Wrong password fails", func(t *testing.T) {
		assert.False(t, CheckPasswordHash("wrong-horse", hash))
	})

	t.Run("Malformed hash fails without panic", func(t *testing.T) {
		assert.False(t, CheckPasswordHash("correct-horse", "not-a-bcrypt-hash"))
	})

	t.Run("Empty inputs fail", func(t *testing.T) {
		assert.False(t, CheckPasswordHash("", hash))
		assert.False(t, CheckPasswordHash("correct-horse", ""))
	})
}
