// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	auditlogDomain "github.com/allisson/formrelay/internal/auditlog/domain"
	credentialDomain "github.com/allisson/formrelay/internal/credential/domain"
	relayDomain "github.com/allisson/formrelay/internal/relay/domain"
	customValidation "github.com/allisson/formrelay/internal/validation"
)

// Default values for configuration fields.
const (
	DefaultServerHost       = "0.0.0.0"
	DefaultServerPort       = 3000
	DefaultLogLevel         = "info"
	DefaultCORSAllowOrigins = "http://localhost:8000,http://127.0.0.1:8000,http://localhost:3000,http://127.0.0.1:3000"
	DefaultMetricsNamespace = "formrelay"
	DefaultMetricsPort      = 8081
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// EncryptionPassword is the current passphrase for the credential and the audit log.
	EncryptionPassword string
	// OldEncryptionPassword is the passphrase being rotated away from.
	OldEncryptionPassword string
	// KMSKeyURI, when set, means both passphrases are base64 KMS ciphertext.
	KMSKeyURI string

	// CredentialFilePath is the location of the encrypted delivery access key.
	CredentialFilePath string
	// AuditLogFilePath is the location of the encrypted audit log.
	AuditLogFilePath string

	// AdminToken is the plain admin token for the log endpoints.
	AdminToken string
	// AdminTokenHash is an Argon2id hash of the admin token and takes precedence over AdminToken.
	AdminTokenHash string

	// FormDeliveryURL is the Web3Forms submission endpoint.
	FormDeliveryURL string
	// FormDeliveryTimeout bounds a single delivery attempt.
	FormDeliveryTimeout time.Duration
	// FormDeliveryRetryMax is the number of retries on transport errors and 5xx responses.
	FormDeliveryRetryMax int
	// FormFromName is sent as from_name with every delivery.
	FormFromName string
	// WhatsappNumber is echoed to the visitor after a successful submission.
	WhatsappNumber string

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// RateLimitEnabled indicates whether per-IP rate limiting of form submissions is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of submissions allowed per second per IP.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size for the per-IP limiter.
	RateLimitBurst int

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int

	// ShutdownTimeout bounds graceful shutdown of the servers.
	ShutdownTimeout time.Duration
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost: env.GetString("SERVER_HOST", DefaultServerHost),
		ServerPort: env.GetInt("SERVER_PORT", DefaultServerPort),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", DefaultLogLevel),

		// Encryption
		EncryptionPassword:    env.GetString("ENCRYPTION_PASSWORD", ""),
		OldEncryptionPassword: env.GetString("OLD_ENCRYPTION_PASSWORD", ""),
		KMSKeyURI:             env.GetString("KMS_KEY_URI", ""),

		// Files
		CredentialFilePath: env.GetString("CREDENTIAL_FILE_PATH", credentialDomain.DefaultFilePath),
		AuditLogFilePath:   env.GetString("AUDIT_LOG_FILE_PATH", auditlogDomain.DefaultFilePath),

		// Admin
		AdminToken:     env.GetString("ADMIN_TOKEN", ""),
		AdminTokenHash: env.GetString("ADMIN_TOKEN_HASH", ""),

		// Form delivery
		FormDeliveryURL:      env.GetString("FORM_DELIVERY_URL", relayDomain.DefaultDeliveryURL),
		FormDeliveryTimeout:  env.GetDuration("FORM_DELIVERY_TIMEOUT_SECONDS", 10, time.Second),
		FormDeliveryRetryMax: env.GetInt("FORM_DELIVERY_RETRY_MAX", 2),
		FormFromName:         env.GetString("FORM_FROM_NAME", relayDomain.DefaultFromName),
		WhatsappNumber:       env.GetString("WHATSAPP_NUMBER", relayDomain.DefaultWhatsappNumber),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", true),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", DefaultCORSAllowOrigins),

		// Rate Limiting (form submissions, IP-based)
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 1.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 5),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", DefaultMetricsNamespace),
		MetricsPort:      env.GetInt("METRICS_PORT", DefaultMetricsPort),

		// Shutdown
		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),
	}
}

// Validate checks the configuration shape. Passphrase presence is checked by the
// commands that need one, so tooling like hash-admin-token runs without it.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.ServerPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.CredentialFilePath, validation.Required, customValidation.NotBlank),
		validation.Field(&c.AuditLogFilePath, validation.Required, customValidation.NotBlank),
		validation.Field(&c.FormDeliveryURL, validation.Required, customValidation.NotBlank),
		validation.Field(&c.FormDeliveryTimeout, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.FormDeliveryRetryMax, validation.Min(0)),
		validation.Field(
			&c.RateLimitRequestsPerSec,
			validation.When(c.RateLimitEnabled, validation.Required, validation.Min(0.0)),
		),
		validation.Field(&c.RateLimitBurst, validation.When(c.RateLimitEnabled, validation.Required, validation.Min(1))),
		validation.Field(
			&c.MetricsPort,
			validation.When(c.MetricsEnabled, validation.Required, validation.Min(1), validation.Max(65535)),
		),
		validation.Field(&c.EncryptionPassword, validation.When(c.KMSKeyURI != "", customValidation.KMSCiphertext)),
		validation.Field(&c.OldEncryptionPassword, validation.When(c.KMSKeyURI != "", customValidation.KMSCiphertext)),
	)
	return customValidation.WrapValidationError(err)
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	default:
		return "release"
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
