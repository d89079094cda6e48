package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	// t.Setenv регистрирует восстановление исходного значения после теста.
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadDB_WithoutAppSecrets(t *testing.T) {
	unsetEnv(t, "SECRET_KEY")
	t.Setenv("DATABASE_PASSWORD", "pg-pass")

	var db DB
	assert.NotPanics(t, func() {
		db = LoadDB(zap.NewNop())
	})

	assert.Equal(t, "localhost", db.Host)
	assert.Equal(t, "5432", db.Port)
	assert.Equal(t, "postgres", db.User)
	assert.Equal(t, "pg-pass", db.Password)
	assert.Equal(t, "postgres", db.Name)
	assert.Equal(t, "disable", db.SSLMode)
}

func TestLoadDB_PasswordRequired(t *testing.T) {
	unsetEnv(t, "DATABASE_PASSWORD")

	assert.Panics(t, func() {
		LoadDB(zap.NewNop())
	})
}

func TestLoad_SecretKeyRequired(t *testing.T) {
	unsetEnv(t, "SECRET_KEY")
	t.Setenv("DATABASE_PASSWORD", "pg-pass")

	assert.Panics(t, func() {
		Load(zap.NewNop())
	})
}
