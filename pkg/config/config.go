package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Mail      MailConfig
	Storage   StorageConfig
	Redis     RedisConfig
	Assistant AssistantConfig
	Exercise  ExerciseConfig
	Logger    LoggerConfig
	Sentry    SentryConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// PublicURL is where this API is reachable; used in verification links.
	PublicURL   string
	FrontendURL string
	CORSOrigins string
}

type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	DBName      string
	SSLMode     string
	AutoMigrate bool
	Migrations  string
}

// URL returns the connection string in URL form, as golang-migrate expects it.
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + c.Port + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

type JWTConfig struct {
	SecretKey     string
	Expiration    time.Duration
	RefreshExp    time.Duration
	ResetExp      time.Duration
	VerifyExp     time.Duration
	Issuer        string
	RequireVerify bool
}

type MailConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	UseTLS      bool
	NotifyEmail string
}

// Enabled reports whether an SMTP server is configured.
func (c MailConfig) Enabled() bool {
	return c.Host != ""
}

type StorageConfig struct {
	// Provider is "minio" or "local".
	Provider  string
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
	UploadDir string
	MaxPhoto  int64
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AssistantConfig struct {
	TypingDelay   time.Duration
	KnowledgeFile string
	// KnowledgeSource is "builtin", "file" or "database".
	KnowledgeSource string
}

type ExerciseConfig struct {
	SessionTTL       time.Duration
	TrackingInterval time.Duration
	MaxPoints        int
}

type SentryConfig struct {
	DSN         string
	Environment string
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work too (Docker/K8s).
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_MINUTES", "15"))
	refreshExp, _ := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRATION_HOURS", "168"))
	mailPort, _ := strconv.Atoi(getEnv("MAIL_PORT", "587"))
	maxPhoto, _ := strconv.ParseInt(getEnv("STORAGE_MAX_PHOTO_BYTES", "5242880"), 10, 64)
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	maxPoints, _ := strconv.Atoi(getEnv("EXERCISE_MAX_POINTS", "50"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "5000"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
			PublicURL:    strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:5000"), "/"),
			FrontendURL:  strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
			CORSOrigins:  getEnv("CORS_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "5432"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", "postgres"),
			DBName:      getEnv("DB_NAME", "telephysio"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			AutoMigrate: getBool("DB_AUTO_MIGRATE", true),
			Migrations:  getEnv("DB_MIGRATIONS_PATH", "migrations"),
		},
		JWT: JWTConfig{
			SecretKey:     getEnv("JWT_SECRET", "your_jwt_secret_key"),
			Expiration:    time.Duration(jwtExp) * time.Minute,
			RefreshExp:    time.Duration(refreshExp) * time.Hour,
			ResetExp:      getDuration("PASSWORD_RESET_TTL", time.Hour),
			VerifyExp:     getDuration("EMAIL_VERIFY_TTL", 24*time.Hour),
			Issuer:        getEnv("JWT_ISSUER", "telephysio"),
			RequireVerify: getBool("REQUIRE_EMAIL_VERIFICATION", true),
		},
		Mail: MailConfig{
			Host:        getEnv("MAIL_SERVER", ""),
			Port:        mailPort,
			Username:    getEnv("MAIL_USERNAME", ""),
			Password:    getEnv("MAIL_PASSWORD", ""),
			From:        getEnv("MAIL_DEFAULT_SENDER", "no-reply@telephysio.local"),
			UseTLS:      getBool("MAIL_USE_TLS", true),
			NotifyEmail: getEnv("NOTIFY_EMAIL", ""),
		},
		Storage: StorageConfig{
			Provider:  getEnv("STORAGE_PROVIDER", "local"),
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "profile-photos"),
			UseSSL:    getBool("MINIO_USE_SSL", false),
			PublicURL: strings.TrimRight(getEnv("STORAGE_PUBLIC_URL", ""), "/"),
			UploadDir: getEnv("UPLOAD_DIR", "uploads"),
			MaxPhoto:  maxPhoto,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Assistant: AssistantConfig{
			TypingDelay:     getDuration("ASSISTANT_TYPING_DELAY", 1500*time.Millisecond),
			KnowledgeFile:   getEnv("ASSISTANT_KNOWLEDGE_FILE", ""),
			KnowledgeSource: getEnv("ASSISTANT_KNOWLEDGE_SOURCE", "builtin"),
		},
		Exercise: ExerciseConfig{
			SessionTTL:       getDuration("EXERCISE_SESSION_TTL", 2*time.Hour),
			TrackingInterval: getDuration("EXERCISE_TRACKING_INTERVAL", 5*time.Second),
			MaxPoints:        maxPoints,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Sentry: SentryConfig{
			DSN:         getEnv("SENTRY_DSN", ""),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// getDuration accepts Go duration strings ("1.5s", "2h").
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
