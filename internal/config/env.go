package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

const defaultDSN = "root:@tcp(127.0.0.1:3306)/tourism"

type Env struct {
	AppAddr     string
	GinMode     string
	DBDSN       string
	CORSOrigins []string
	LogLevel    string
	StaticDir   string
}

// LoadEnv reads process env, falling back to a .env file (ENV_FILE overrides
// its path) and then to defaults.
func LoadEnv() Env {
	v := viper.New()
	v.SetDefault("APP_ADDR", ":8080")
	v.SetDefault("DB_DSN", defaultDSN)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STATIC_DIR", "web/static")

	envFile := strings.TrimSpace(os.Getenv("ENV_FILE"))
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		_ = v.ReadInConfig()
	}
	v.AutomaticEnv()

	var origins []string
	for _, o := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Env{
		AppAddr:     strings.TrimSpace(v.GetString("APP_ADDR")),
		GinMode:     strings.TrimSpace(v.GetString("GIN_MODE")),
		DBDSN:       strings.TrimSpace(v.GetString("DB_DSN")),
		CORSOrigins: origins,
		LogLevel:    strings.TrimSpace(v.GetString("LOG_LEVEL")),
		StaticDir:   strings.TrimSpace(v.GetString("STATIC_DIR")),
	}
}
