package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Storage. DATABASE_DRIVER is "mongo" or "postgres".
	DatabaseDriver string `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	DatabaseName   string `mapstructure:"DATABASE_NAME"`
	PostgresDSN    string `mapstructure:"POSTGRES_DSN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisLockDB   int    `mapstructure:"REDIS_LOCK_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	PrefillTTLMinutes int  `mapstructure:"PREFILL_TTL_MINUTES"`
	SubmitLockSeconds int  `mapstructure:"SUBMIT_LOCK_SECONDS"`
	EnableWorker      bool `mapstructure:"ENABLE_WORKER"`

	// Reverse geocoding (Nominatim compatible).
	GeocoderURL            string `mapstructure:"GEOCODER_URL"`
	GeocoderUserAgent      string `mapstructure:"GEOCODER_USER_AGENT"`
	GeocoderTimeoutSeconds int    `mapstructure:"GEOCODER_TIMEOUT_SECONDS"`

	// Optional path to a catalog.yaml overriding the embedded one.
	CatalogFile string `mapstructure:"CATALOG_FILE"`
}

var AppConfig Config

func LoadConfig() {
	// A local .env is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_DRIVER", "mongo")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "khadamat")
	viper.SetDefault("POSTGRES_DSN", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_LOCK_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("PREFILL_TTL_MINUTES", 30)
	viper.SetDefault("SUBMIT_LOCK_SECONDS", 30)
	viper.SetDefault("ENABLE_WORKER", true)
	viper.SetDefault("GEOCODER_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("GEOCODER_USER_AGENT", "khadamat-booking/1.0")
	viper.SetDefault("GEOCODER_TIMEOUT_SECONDS", 10)
	viper.SetDefault("CATALOG_FILE", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
