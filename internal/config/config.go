package config

import (
	"os"
	"strings"
)

type Config struct {
	ProjectID                    string
	Port                         string
	AllowedOrigins               []string
	StorageBucket                string
	ProjectURL                   string
	RedisAddr                    string
	RedisPassword                string
	StripeSecretKey              string
	StripeWebhookSecret          string
	SignedURLServiceAccountEmail string
}

func Load() Config {
	projectID := getenv("FIREBASE_PROJECT_ID", "")
	if projectID == "" {
		projectID = getenv("GOOGLE_CLOUD_PROJECT", "")
	}

	port := getenv("PORT", "8080")
	origins := getenv("ALLOWED_ORIGINS", "http://localhost:3000")
	storageBucket := getenv("FIREBASE_STORAGE_BUCKET", "")
	if storageBucket == "" && projectID != "" {
		storageBucket = projectID + ".appspot.com"
	}

	// Used to build the password-reset redirect link.
	projectURL := getenv("PROJECT_URL", "https://facility-admin.web.app")

	allowed := []string{}
	for _, o := range strings.Split(origins, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			allowed = append(allowed, o)
		}
	}

	return Config{
		ProjectID:                    projectID,
		Port:                         port,
		AllowedOrigins:               allowed,
		StorageBucket:                storageBucket,
		ProjectURL:                   projectURL,
		RedisAddr:                    getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:                getenv("REDIS_PASSWORD", ""),
		StripeSecretKey:              getenv("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret:          getenv("STRIPE_WEBHOOK_SECRET", ""),
		SignedURLServiceAccountEmail: getenv("SIGNED_URL_SERVICE_ACCOUNT_EMAIL", ""),
	}
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
