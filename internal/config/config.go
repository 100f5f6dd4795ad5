package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends
const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
	StoreRedis  = "redis"
	StoreCached = "cached"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port               int      `json:"port"`
	Environment        string   `json:"environment"`
	CORSAllowedOrigins []string `json:"cors_allowed_origins"`

	// Record store configuration
	StoreBackend string `json:"store_backend"`

	// MongoDB configuration
	MongoURI              string        `json:"mongo_uri"`
	MongoDatabase         string        `json:"mongo_database"`
	RecordsCollection     string        `json:"mongo_records_collection"`
	AuditLogsCollection   string        `json:"mongo_audit_logs_collection"`
	MongoOperationTimeout time.Duration `json:"mongo_operation_timeout"`

	// Redis configuration
	RedisURI      string        `json:"redis_uri"`
	RedisPassword string        `json:"redis_password"`
	RedisDB       int           `json:"redis_db"`
	RedisTTL      time.Duration `json:"redis_ttl"`

	// Session configuration
	JWTSecret string        `json:"-"`
	JWTTTL    time.Duration `json:"jwt_ttl"`

	// Login throttling, per username
	LoginRateLimit float64 `json:"login_rate_limit"`
	LoginRateBurst int     `json:"login_rate_burst"`

	// Tracing configuration
	TracingEnabled     bool    `json:"tracing_enabled"`
	TracingEndpoint    string  `json:"tracing_endpoint"`
	TracingSampleRatio float64 `json:"tracing_sample_ratio"`

	// Audit log configuration
	AuditLogsEnabled bool `json:"audit_logs_enabled"`
	AuditBufferSize  int  `json:"audit_buffer_size"`

	// Association settings
	DirectoryCity          string `json:"directory_city"`
	BootstrapAdminPassword string `json:"-"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	port, err := getEnvAsIntOrDefault("PORT", 8080)
	if err != nil {
		return err
	}

	redisDB, err := getEnvAsIntOrDefault("REDIS_DB", 0)
	if err != nil {
		return err
	}

	redisTTL, err := getEnvAsDurationOrDefault("REDIS_TTL", 60*time.Minute)
	if err != nil {
		return err
	}

	mongoTimeout, err := getEnvAsDurationOrDefault("MONGODB_OPERATION_TIMEOUT", 5*time.Second)
	if err != nil {
		return err
	}

	jwtTTL, err := getEnvAsDurationOrDefault("JWT_TTL", 12*time.Hour)
	if err != nil {
		return err
	}

	loginRate, err := strconv.ParseFloat(getEnvOrDefault("LOGIN_RATE_LIMIT", "0.2"), 64)
	if err != nil || loginRate <= 0 {
		return fmt.Errorf("invalid LOGIN_RATE_LIMIT: %q", os.Getenv("LOGIN_RATE_LIMIT"))
	}

	loginBurst, err := getEnvAsIntOrDefault("LOGIN_RATE_BURST", 5)
	if err != nil {
		return err
	}

	sampleRatio, err := strconv.ParseFloat(getEnvOrDefault("TRACING_SAMPLE_RATIO", "1"), 64)
	if err != nil || sampleRatio < 0 || sampleRatio > 1 {
		return fmt.Errorf("invalid TRACING_SAMPLE_RATIO: %q", os.Getenv("TRACING_SAMPLE_RATIO"))
	}

	auditBuffer, err := getEnvAsIntOrDefault("AUDIT_BUFFER_SIZE", 1000)
	if err != nil {
		return err
	}

	environment := getEnvOrDefault("ENVIRONMENT", "development")

	backend := strings.ToLower(getEnvOrDefault("STORE_BACKEND", StoreMongo))
	switch backend {
	case StoreMemory, StoreMongo, StoreRedis, StoreCached:
	default:
		return fmt.Errorf("invalid STORE_BACKEND: %q", backend)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		if environment == "production" {
			return fmt.Errorf("JWT_SECRET environment variable is required in production")
		}
		jwtSecret = "development-secret"
	}

	AppConfig = &Config{
		// Server configuration
		Port:               port,
		Environment:        environment,
		CORSAllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),

		StoreBackend: backend,

		// MongoDB configuration
		MongoURI:              getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:         getEnvOrDefault("MONGODB_DATABASE", "ampm"),
		RecordsCollection:     getEnvOrDefault("MONGODB_RECORDS_COLLECTION", "records"),
		AuditLogsCollection:   getEnvOrDefault("MONGODB_AUDIT_LOGS_COLLECTION", "audit_logs"),
		MongoOperationTimeout: mongoTimeout,

		// Redis configuration
		RedisURI:      getEnvOrDefault("REDIS_URI", "localhost:6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		RedisTTL:      redisTTL,

		JWTSecret: jwtSecret,
		JWTTTL:    jwtTTL,

		LoginRateLimit: loginRate,
		LoginRateBurst: loginBurst,

		TracingEnabled:     getEnvAsBoolOrDefault("TRACING_ENABLED", false),
		TracingEndpoint:    getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
		TracingSampleRatio: sampleRatio,

		AuditLogsEnabled: getEnvAsBoolOrDefault("AUDIT_LOGS_ENABLED", true),
		AuditBufferSize:  auditBuffer,

		DirectoryCity:          getEnvOrDefault("DIRECTORY_CITY", "Natal, RN"),
		BootstrapAdminPassword: getEnvOrDefault("BOOTSTRAP_ADMIN_PASSWORD", "123456"),
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	parsed, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return parsed
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
