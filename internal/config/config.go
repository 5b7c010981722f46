package config

import (
	"errors"
	"os"
	"time"
)

// Config carries everything read from the process environment at startup.
type Config struct {
	MongoURI        string
	DBName          string
	Collection      string
	Port            string
	CredentialsFile string
	RequestTimeout  time.Duration
}

// Load reads the configuration from the environment. MONGODB_URI is the only
// required variable; everything else has the defaults the deployment has
// always used.
func Load() (*Config, error) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		return nil, errors.New("MONGODB_URI is required")
	}

	cfg := &Config{
		MongoURI:        uri,
		DBName:          envOr("MONGODB_DB", "foodDB"),
		Collection:      envOr("MONGODB_COLLECTION", "foodShare"),
		Port:            envOr("PORT", "3000"),
		CredentialsFile: envOr("FIREBASE_CREDENTIALS", "admin-key.json"),
		RequestTimeout:  10 * time.Second,
	}

	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.New("REQUEST_TIMEOUT must be a duration like 10s")
		}
		cfg.RequestTimeout = d
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
