package config

import (
	"time"
)

// AuthConfig содержит настройки аутентификации.
type AuthConfig struct {
	BcryptCost    int           `yaml:"bcrypt_cost" env:"PRODUCTOS_AUTH_BCRYPT_COST" env-default:"10"`
	TokenBytes    int           `yaml:"token_bytes" env:"PRODUCTOS_AUTH_TOKEN_BYTES" env-default:"32"`
	TokenCacheTTL time.Duration `yaml:"token_cache_ttl" env:"PRODUCTOS_AUTH_TOKEN_CACHE_TTL" env-default:"5m"`
}
