package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret  = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer  = "backoffice-app"
	defaultRateLimit  = "100-M"
	defaultRatioScale = 2
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	CORSAllowedOrigins []string
	RateLimit          string // ulule/limiter formatted rate, e.g. "100-M"

	// SplitAllowDuplicateAssignees lets one split give several children to the same assignee.
	SplitAllowDuplicateAssignees bool
	// AllocationRatioScale is the number of decimal places of ratio-derived allocation amounts.
	AllocationRatioScale int32
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("SPLIT_ALLOW_DUPLICATE_ASSIGNEES", true)
	viper.SetDefault("ALLOCATION_RATIO_SCALE", defaultRatioScale)

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:                  viper.GetString("PGSQL_URL"),
		Port:                         viper.GetString("PORT"),
		IsProduction:                 viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:                viper.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:               viper.GetString("MIGRATIONS_PATH"),
		JWTSecret:                    viper.GetString("JWT_SECRET"),
		JWTIssuer:                    viper.GetString("JWT_ISSUER"),
		RateLimit:                    viper.GetString("RATE_LIMIT"),
		SplitAllowDuplicateAssignees: viper.GetBool("SPLIT_ALLOW_DUPLICATE_ASSIGNEES"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", cfg.RateLimit)
	}

	scale := viper.GetInt("ALLOCATION_RATIO_SCALE")
	if scale < 0 || scale > 8 {
		log.Printf("Warning: Invalid value for ALLOCATION_RATIO_SCALE (%d). Defaulting to %d.\n", scale, defaultRatioScale)
		scale = defaultRatioScale
	}
	cfg.AllocationRatioScale = int32(scale)

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
