package config

import (
	"os"
	"strconv"
	"sync"
)

type JWTConfig struct {
	Secret        string
	ExpireMinutes int
}

var (
	jwtConfig *JWTConfig
	jwtOnce   sync.Once
)

func LoadJWTConfig() *JWTConfig {
	jwtOnce.Do(func() {
		expire, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_MINUTES"))
		if err != nil || expire <= 0 {
			expire = 30
		}
		jwtConfig = &JWTConfig{
			Secret:        os.Getenv("JWT_SECRET"),
			ExpireMinutes: expire,
		}
	})
	return jwtConfig
}
