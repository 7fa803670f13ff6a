package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrMailNotConfigured is returned by MailConfig.Validate when required SMTP settings are absent.
var ErrMailNotConfigured = errors.New("mail configuration incomplete")

// Storage backends accepted in STORAGE_BACKEND.
const (
	StorageBackendFile  = "file"
	StorageBackendMinIO = "minio"
)

// StorageConfig selects where blog partitions and CV documents are read from.
type StorageConfig struct {
	Backend string
	DataDir string
	CVDir   string
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MailConfig holds the SMTP settings used by the contact relay.
// It is built once at start-up and handed to the relay; nothing reads SMTP_* lazily.
type MailConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	From      string
	To        string
	TLSPolicy string
	Timeout   time.Duration
}

// Validate reports which required settings are missing, naming the environment variables.
func (c MailConfig) Validate() error {
	var missing []string
	if c.Host == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if c.Port <= 0 {
		missing = append(missing, "SMTP_PORT")
	}
	if c.Username == "" {
		missing = append(missing, "SMTP_USER")
	}
	if c.Password == "" {
		missing = append(missing, "SMTP_PASSWORD")
	}
	if c.To == "" {
		missing = append(missing, "MAIL_TO")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrMailNotConfigured, strings.Join(missing, ", "))
	}
	return nil
}

// Sender returns the address used in the From header.
func (c MailConfig) Sender() string {
	if c.From != "" {
		return c.From
	}
	return c.Username
}

// GitHubConfig holds the settings of the pinned repositories proxy.
type GitHubConfig struct {
	Token      string
	Username   string
	GraphQLURL string
	Timeout    time.Duration
}

// LogConfig controls the application logger.
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port              string
	TimeZone          string
	ContactRatePerMin int
	Storage           StorageConfig
	MinIO             MinIOConfig
	Mail              MailConfig
	GitHub            GitHubConfig
	Log               LogConfig
}

// Location resolves TimeZone, falling back to UTC when it is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port:              getEnv("PORT", "8080"),
		TimeZone:          getEnv("TZ_NAME", "UTC"),
		ContactRatePerMin: getEnvInt("CONTACT_RATE_PER_MIN", 5),
		Storage: StorageConfig{
			Backend: strings.ToLower(getEnv("STORAGE_BACKEND", StorageBackendFile)),
			DataDir: getEnv("DATA_DIR", "."),
			CVDir:   getEnv("CV_DIR", "."),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Mail: MailConfig{
			Host:      getEnv("SMTP_HOST", ""),
			Port:      getEnvInt("SMTP_PORT", 587),
			Username:  getEnv("SMTP_USER", ""),
			Password:  getEnv("SMTP_PASSWORD", ""),
			From:      getEnv("MAIL_FROM", ""),
			To:        getEnv("MAIL_TO", ""),
			TLSPolicy: strings.ToLower(getEnv("SMTP_TLS", "mandatory")),
			Timeout:   time.Duration(getEnvInt("SMTP_TIMEOUT_SEC", 10)) * time.Second,
		},
		GitHub: GitHubConfig{
			Token:      getEnv("GITHUB_TOKEN", ""),
			Username:   getEnv("GITHUB_USERNAME", "JoseReimondez"),
			GraphQLURL: getEnv("GITHUB_GRAPHQL_URL", "https://api.github.com/graphql"),
			Timeout:    time.Duration(getEnvInt("GITHUB_TIMEOUT_SEC", 10)) * time.Second,
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
			File:   getEnv("LOG_FILE", ""),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
