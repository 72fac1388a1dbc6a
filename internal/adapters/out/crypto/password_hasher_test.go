package crypto_test

import (
	"testing"

	"opsconsole/internal/adapters/out/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func Test_BcryptPasswordHasher(t *testing.T) {
	hasher := crypto.NewBcryptPasswordHasher()

	t.Run("should produce a bcrypt hash matching the password", func(t *testing.T) {
		hash, err := hasher.Hash("s3cureP@ss")
		require.NoError(t, err)
		assert.NotEqual(t, "s3cureP@ss", hash)

		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cureP@ss")))
	})

	t.Run("should not match a different password", func(t *testing.T) {
		hash, err := hasher.Hash("s3cureP@ss")
		require.NoError(t, err)

		assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("different")))
	})

	t.Run("should produce distinct hashes for the same password", func(t *testing.T) {
		first, err := hasher.Hash("s3cureP@ss")
		require.NoError(t, err)
		second, err := hasher.Hash("s3cureP@ss")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}
