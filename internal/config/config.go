package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL, when set, is used as the base for object URLs instead of presigned links.
	PublicURL        string
	PresignExpirySec int
}

// MediaConfig selects and configures the file storage backing uploaded media.
type MediaConfig struct {
	Driver string // "local" or "minio"
	Root   string
	URL    string
	Serve  bool
}

// ExportConfig holds defaults for the static export tool.
type ExportConfig struct {
	OutputJSON     string
	OutputMediaDir string
	PublicPrefix   string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost       string
	Port          string
	Timezone      string
	PublicBaseURL string
	CORSOrigins   []string
	ContactPolicy string
	Database      DatabaseConfig
	MinIO         MinIOConfig
	Media         MediaConfig
	Export        ExportConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:       getEnv("APP_HOST", "localhost:8080"),
		Port:          getEnv("PORT", "8080"),
		Timezone:      getEnv("APP_TIMEZONE", "UTC"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		CORSOrigins:   getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		ContactPolicy: strings.ToLower(getEnv("CONTACT_POLICY", "lenient")),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:         getEnv("MINIO_ENDPOINT", ""),
			AccessKey:        getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:        getEnv("MINIO_SECRET_KEY", ""),
			Bucket:           getEnv("MINIO_BUCKET", ""),
			UseSSL:           getEnvBool("MINIO_USE_SSL", false),
			PublicURL:        getEnv("MINIO_PUBLIC_URL", ""),
			PresignExpirySec: getEnvInt("MINIO_PRESIGN_EXPIRY_SEC", 3600),
		},
		Media: MediaConfig{
			Driver: strings.ToLower(getEnv("STORAGE_DRIVER", "local")),
			Root:   getEnv("MEDIA_ROOT", "media"),
			URL:    getEnv("MEDIA_URL", "/media/"),
			Serve:  getEnvBool("MEDIA_SERVE", false),
		},
		Export: ExportConfig{
			OutputJSON:     getEnv("EXPORT_OUTPUT_JSON", "frontend/public/published-content.json"),
			OutputMediaDir: getEnv("EXPORT_OUTPUT_MEDIA_DIR", "frontend/public/published-media"),
			PublicPrefix:   getEnv("EXPORT_PUBLIC_PREFIX", "/published-media/"),
		},
	}
}

// Location resolves the configured timezone, falling back to UTC when it is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
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

// getEnvList splits a comma-separated variable, dropping blank entries.
func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
