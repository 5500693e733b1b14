package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	BaseURL  string // REST API base, no trailing slash
	StateDir string // session file location
	StubPort string
	Origin   string // CORS origin allowed by the stub
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in first when present; real environment
// variables win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:      env("APP_ENV", "dev"),
		BaseURL:  env("KAVPRIME_API_BASE_URL", "http://localhost:8000/api"),
		StateDir: env("INVPRIME_STATE_DIR", defaultStateDir()),
		StubPort: env("STUB_PORT", "8000"),
		Origin:   env("CORS_ORIGIN", "http://localhost:3000"),
	}
}

func defaultStateDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "invprime")
	}
	return ".invprime"
}
