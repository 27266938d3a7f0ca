package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Storage backend selectors. The canonical backend is the S3-compatible
// bucket; "gcs" exists for the legacy storage.googleapis.com deployment and
// "local" for development without any cloud credentials.
const (
	StorageBackendS3    = "s3"
	StorageBackendGCS   = "gcs"
	StorageBackendLocal = "local"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	ServerPort string
	LogLevel   string

	JWTSecret     string
	SessionMaxAge int // seconds

	StorageBackend string

	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string

	GCSProjectID       string
	GCSCredentialsFile string

	LocalStoragePath string

	// StorageBucket and PublicBaseURL are shared by all backends.
	// PublicBaseURL is the canonical public-access base that image URLs are
	// normalized to, e.g. https://<project>.supabase.co/storage/v1/object/public
	StorageBucket string
	PublicBaseURL string

	RedisURL        string
	FeedCacheTTLSec int
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found or error loading it, relying on environment variables")
	}

	sessionMaxAge, err := strconv.Atoi(os.Getenv("SESSION_MAX_AGE"))
	if err != nil || sessionMaxAge <= 0 {
		sessionMaxAge = 86400
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	storageBackend := os.Getenv("STORAGE_BACKEND")
	if storageBackend == "" {
		storageBackend = StorageBackendS3
	}

	feedCacheTTL, err := strconv.Atoi(os.Getenv("FEED_CACHE_TTL_SECONDS"))
	if err != nil || feedCacheTTL <= 0 {
		feedCacheTTL = 30
	}

	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		ServerPort: serverPort,
		LogLevel:   logLevel,

		JWTSecret:     os.Getenv("JWT_SECRET"),
		SessionMaxAge: sessionMaxAge,

		StorageBackend: storageBackend,

		S3Endpoint:        os.Getenv("S3_ENDPOINT"),
		S3AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),

		GCSProjectID:       os.Getenv("GCS_PROJECT_ID"),
		GCSCredentialsFile: os.Getenv("GCS_CREDENTIALS_FILE"),

		LocalStoragePath: os.Getenv("LOCAL_STORAGE_PATH"),

		StorageBucket: os.Getenv("STORAGE_BUCKET"),
		PublicBaseURL: os.Getenv("STORAGE_PUBLIC_BASE_URL"),

		RedisURL:        os.Getenv("REDIS_URL"),
		FeedCacheTTLSec: feedCacheTTL,
	}, nil
}
