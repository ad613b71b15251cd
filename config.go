package vkit

import (
	"time"

	"github.com/dmitrymomot/vkit/pkg/config"
)

// Config holds the client configuration. OwnerID identifies the wall the
// client operates on; community pages carry a leading minus sign.
type Config struct {
	OwnerID     string        `env:"VK_OWNER_ID,required"`
	AccessToken string        `env:"VK_ACCESS_TOKEN,required"`
	GroupToken  string        `env:"VK_GROUP_TOKEN"`
	BaseURL     string        `env:"VK_BASE_URL" envDefault:"https://api.vk.com/method/"`
	Version     string        `env:"VK_API_VERSION" envDefault:"5.131"`
	HTTPTimeout time.Duration `env:"VK_HTTP_TIMEOUT" envDefault:"30s"`
}

// LoadConfig populates Config from the environment (and a .env file when
// present in the working directory).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
