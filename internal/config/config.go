package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AppConfig bundles everything the server needs at startup.
type AppConfig struct {
	ListenAddr     string
	Port           string
	MongoURI       string
	MongoDB        string
	SessionSecret  string
	GinMode        string
	AdminUsername  string
	AdminPassword  string
	S3Endpoint     string
	S3AccessKey    string
	S3SecretKey    string
	S3Bucket       string
	S3UseSSL       bool
	S3PublicBase   string
	StorageQuotaMB int64
}

// Load reads the application configuration from environment variables and
// fills in safe defaults for anything missing.
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	mongoURI := strings.TrimSpace(os.Getenv("MONGO_URI"))
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	mongoDB := strings.TrimSpace(os.Getenv("MONGO_DB"))
	if mongoDB == "" {
		mongoDB = "haneducation"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "haneducation-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	s3Bucket := strings.TrimSpace(os.Getenv("S3_BUCKET"))
	if s3Bucket == "" {
		s3Bucket = "haneducation-media"
	}

	quotaMB := int64(512)
	if raw := strings.TrimSpace(os.Getenv("STORAGE_QUOTA_MB")); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			quotaMB = parsed
		}
	}

	return AppConfig{
		ListenAddr:     listenAddr,
		Port:           port,
		MongoURI:       mongoURI,
		MongoDB:        mongoDB,
		SessionSecret:  sessionSecret,
		GinMode:        ginMode,
		AdminUsername:  strings.TrimSpace(os.Getenv("ADMIN_USERNAME")),
		AdminPassword:  strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),
		S3Endpoint:     strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
		S3AccessKey:    strings.TrimSpace(os.Getenv("S3_ACCESS_KEY")),
		S3SecretKey:    strings.TrimSpace(os.Getenv("S3_SECRET_KEY")),
		S3Bucket:       s3Bucket,
		S3UseSSL:       parseBool(os.Getenv("S3_USE_SSL"), true),
		S3PublicBase:   strings.TrimSpace(os.Getenv("S3_PUBLIC_BASE_URL")),
		StorageQuotaMB: quotaMB,
	}
}

func parseBool(raw string, fallback bool) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(trimmed)
	if err != nil {
		return fallback
	}
	return parsed
}
