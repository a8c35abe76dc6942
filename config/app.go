package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// App holds the settings resolved once at startup and handed to constructors.
type App struct {
	AdminToken      string
	PublicBaseURL   string
	AdminListLimit  int
	RequestTimeout  time.Duration
	CreateRateLimit int
}

// LoadEnv reads .env when present. Variables already set in the environment win.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		GetLogrusInstance().Info("No .env file found, using system environment")
		return
	}
	GetLogrusInstance().Info(".env file loaded")
}

func LoadAppConfig() App {
	return App{
		AdminToken:      GetAdminToken(),
		PublicBaseURL:   GetPublicBaseURL(),
		AdminListLimit:  getIntEnv("ADMIN_LIST_LIMIT", 50),
		RequestTimeout:  getDurationEnv("REQUEST_TIMEOUT", 10*time.Second),
		CreateRateLimit: getIntEnv("CREATE_RATE_LIMIT", 30),
	}
}

// GetAdminToken returns the shared admin secret, or "" when the gate is disabled.
func GetAdminToken() string {
	return strings.TrimSpace(os.Getenv("ADMIN_TOKEN"))
}

func GetPublicBaseURL() string {
	return strings.TrimSpace(os.Getenv("PUBLIC_BASE_URL"))
}

func getIntEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		GetLogrusInstance().Warnf("%s invalid, value : %s, using %d", key, v, def)
		return def
	}
	return n
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		GetLogrusInstance().Warnf("%s invalid, value : %s, using %s", key, v, def)
		return def
	}
	return d
}
