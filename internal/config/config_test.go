package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads; getEnv treats empty as unset
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BOT_TOKEN", "OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
		"ADVICE_TIMEOUT", "DIALOG_TIMEOUT", "MEAL_STORE",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	} {
		t.Setenv(key, "")
	}
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("OPENAI_API_KEY", "test_key")
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetDuration(t *testing.T) {
	tests := []struct {
		name          string
		value         string
		expected      time.Duration
		expectedError bool
	}{
		{name: "unset uses default", value: "", expected: time.Minute},
		{name: "valid duration", value: "45s", expected: 45 * time.Second},
		{name: "zero allowed", value: "0", expected: 0},
		{name: "garbage", value: "soon", expectedError: true},
		{name: "negative", value: "-5s", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)

			d, err := getDuration("TEST_DURATION", time.Minute)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "TEST_DURATION")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, d)
			}
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "test_key", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.Model)
	assert.Empty(t, cfg.OpenAI.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.OpenAI.Timeout)
	assert.Equal(t, 15*time.Minute, cfg.DialogTimeout)
	assert.Equal(t, StoreMemory, cfg.MealStore)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "nutritrack", cfg.Database.Name)
	assert.Equal(t, "nutritrack", cfg.Database.User)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("ADVICE_TIMEOUT", "5s")
	t.Setenv("DIALOG_TIMEOUT", "0")
	t.Setenv("MEAL_STORE", "redis")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "http://localhost:8080/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.OpenAI.Timeout)
	assert.Equal(t, time.Duration(0), cfg.DialogTimeout)
	assert.Equal(t, StoreRedis, cfg.MealStore)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		contains string
	}{
		{
			name:     "missing bot token",
			env:      map[string]string{"OPENAI_API_KEY": "key"},
			contains: "BOT_TOKEN",
		},
		{
			name:     "missing openai key",
			env:      map[string]string{"BOT_TOKEN": "token"},
			contains: "OPENAI_API_KEY",
		},
		{
			name:     "postgres without password",
			env:      map[string]string{"BOT_TOKEN": "token", "OPENAI_API_KEY": "key", "MEAL_STORE": "postgres"},
			contains: "DB_PASSWORD",
		},
		{
			name:     "unknown store",
			env:      map[string]string{"BOT_TOKEN": "token", "OPENAI_API_KEY": "key", "MEAL_STORE": "sqlite"},
			contains: "MEAL_STORE",
		},
		{
			name:     "bad redis db",
			env:      map[string]string{"BOT_TOKEN": "token", "OPENAI_API_KEY": "key", "REDIS_DB": "one"},
			contains: "REDIS_DB",
		},
		{
			name:     "bad dialog timeout",
			env:      map[string]string{"BOT_TOKEN": "token", "OPENAI_API_KEY": "key", "DIALOG_TIMEOUT": "forever"},
			contains: "DIALOG_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoad_PostgresWithPassword(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("MEAL_STORE", "postgres")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorePostgres, cfg.MealStore)
	assert.Equal(t, "secret", cfg.Database.Password)
}
