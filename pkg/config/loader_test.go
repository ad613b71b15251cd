package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vkit/pkg/config"
)

type testConfig struct {
	Token   string   `env:"TEST_VK_TOKEN"`
	OwnerID string   `env:"TEST_VK_OWNER_ID" envDefault:"-1"`
	Scopes  []string `env:"TEST_VK_SCOPES" envSeparator:","`
}

type requiredConfig struct {
	Token string `env:"TEST_VK_REQUIRED_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("parses tagged fields from the environment", func(t *testing.T) {
		t.Setenv("TEST_VK_TOKEN", "secret")
		t.Setenv("TEST_VK_SCOPES", "wall,messages")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "secret", cfg.Token)
		assert.Equal(t, []string{"wall", "messages"}, cfg.Scopes)
	})

	t.Run("applies defaults for unset variables", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "-1", cfg.OwnerID)
	})

	t.Run("fails for missing required variables", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)

		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("missing explicit file is an error", func(t *testing.T) {
		err := config.LoadEnv("testdata/does-not-exist.env")
		assert.ErrorIs(t, err, config.ErrEnvFileNotLoaded)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})
}
