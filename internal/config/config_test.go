package config

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("STORAGE_BACKEND", "MinIO")
	t.Setenv("GITHUB_TIMEOUT_SEC", "3")

	cfg := Load()

	assert.Equal(t, "smtp.example.com", cfg.Mail.Host)
	assert.Equal(t, 465, cfg.Mail.Port)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, StorageBackendMinIO, cfg.Storage.Backend)
	assert.Equal(t, 3*time.Second, cfg.GitHub.Timeout)
	assert.Equal(t, "https://api.github.com/graphql", cfg.GitHub.GraphQLURL)
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORAGE_BACKEND", "DATA_DIR", "SMTP_PORT", "CONTACT_RATE_PER_MIN"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageBackendFile, cfg.Storage.Backend)
	assert.Equal(t, ".", cfg.Storage.DataDir)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Equal(t, 5, cfg.ContactRatePerMin)
	assert.Equal(t, 10*time.Second, cfg.Mail.Timeout)
}

func TestMailConfig_Validate(t *testing.T) {
	complete := MailConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "me@example.com",
		Password: "secret",
		To:       "inbox@example.com",
	}

	t.Run("complete", func(t *testing.T) {
		assert.NoError(t, complete.Validate())
	})

	t.Run("missing password", func(t *testing.T) {
		c := complete
		c.Password = ""
		err := c.Validate()
		assert.True(t, errors.Is(err, ErrMailNotConfigured))
		assert.Contains(t, err.Error(), "SMTP_PASSWORD")
		assert.NotContains(t, err.Error(), "SMTP_HOST")
	})

	t.Run("everything missing", func(t *testing.T) {
		err := MailConfig{}.Validate()
		assert.ErrorIs(t, err, ErrMailNotConfigured)
		assert.Contains(t, err.Error(), "SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASSWORD, MAIL_TO")
	})
}

func TestMailConfig_Sender(t *testing.T) {
	assert.Equal(t, "me@example.com", MailConfig{Username: "me@example.com"}.Sender())
	assert.Equal(t, "web@example.com", MailConfig{Username: "me@example.com", From: "web@example.com"}.Sender())
}

func TestAppConfig_Location(t *testing.T) {
	assert.Equal(t, time.UTC, (&AppConfig{TimeZone: "Not/AZone"}).Location())
	assert.Equal(t, "UTC", (&AppConfig{TimeZone: "UTC"}).Location().String())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
