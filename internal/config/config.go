package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	MongoURI        string
	MongoDB         string
	JWTSecret       string
	SessionTTL      time.Duration
	AuthValidateURL string
	DelhiveryToken  string
	HeavyBaseURL    string
	TrackBaseURL    string
	OriginPincode   string
	CatalogCacheTTL time.Duration
}

func LoadConfig() *Config {
	// Solo cargar .env en desarrollo local;
	// en producción las variables vienen del entorno
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		} else {
			log.Println("✅ .env file loaded successfully")
		}
	} else {
		log.Println("🌐 Using system environment variables")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		MongoURI:        getEnv("MONGO_URI", ""),
		MongoDB:         getEnv("MONGO_DB", "farmchoice"),
		JWTSecret:       getEnv("JWT_SECRET", "my_super_secret_key"),
		SessionTTL:      getEnvMinutes("SESSION_TTL_MINUTES", 120),
		AuthValidateURL: getEnv("AUTH_VALIDATE_URL", ""),
		DelhiveryToken:  getEnv("DELHIVERY_API_TOKEN", ""),
		HeavyBaseURL:    getEnv("DELHIVERY_HEAVY_BASE_URL", "https://staging-express.delhivery.com"),
		TrackBaseURL:    getEnv("DELHIVERY_TRACK_BASE_URL", "https://track.delhivery.com"),
		OriginPincode:   getEnv("DEFAULT_ORIGIN_PINCODE", "411001"),
		CatalogCacheTTL: getEnvMinutes("CATALOG_CACHE_TTL_MINUTES", 5),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvMinutes(key string, fallback int) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
		log.Println("⚠️ Invalid value for", key, "- using default")
	}
	return time.Duration(fallback) * time.Minute
}
