// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv and github.com/caarlos0/env/v11:
// LoadEnv reads one or more .env files into the process environment, and
// Load parses the environment into any struct annotated with `env` tags.
//
//	type ClientConfig struct {
//		OwnerID     string `env:"VK_OWNER_ID,required"`
//		AccessToken string `env:"VK_ACCESS_TOKEN,required"`
//	}
//
//	var cfg ClientConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Load reads the default .env file once per process before the first parse;
// MustLoad panics on failure for configuration the application cannot start
// without.
package config
