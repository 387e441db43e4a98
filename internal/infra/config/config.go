// internal/infra/config/config.go
package config

import "os"

// Config holds the environment configuration for the whole app.
type Config struct {
	Port string

	FirestoreProjectID       string
	FirestoreCredentialsFile string
	FirebaseProjectID        string

	GCSBucket    string
	GCPCreds     string
	GCSBaseURL   string // public base URL for uploaded images; defaults to storage.googleapis.com
	GuestCartDir string // directory for the local guest cart file

	AllowedOrigin string

	// SendGrid; the API key comes from Secret Manager when SENDGRID_API_KEY
	// is unset.
	SendGridAPIKey     string
	SendGridSecretName string
	MailFrom           string
}

// Load reads the environment and returns a Config.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "dreamweave-storefront")

	cfg := &Config{
		Port: getenvDefault("PORT", "8080"),

		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		FirebaseProjectID:        getenvDefault("FIREBASE_PROJECT_ID", defaultProject),

		GCSBucket:    os.Getenv("GCS_BUCKET"),
		GCPCreds:     os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		GCSBaseURL:   os.Getenv("GCS_PUBLIC_BASE_URL"),
		GuestCartDir: getenvDefault("GUEST_CART_DIR", "."),

		AllowedOrigin: getenvDefault("ALLOWED_ORIGIN", "*"),

		SendGridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		SendGridSecretName: getenvDefault("SENDGRID_SECRET_NAME", "sendgrid-api-key"),
		MailFrom:           getenvDefault("MAIL_FROM", "orders@dreamweave.example.com"),
	}

	return cfg
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
