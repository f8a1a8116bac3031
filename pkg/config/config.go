package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const defaultPhonePeBaseURL = "https://api-preprod.phonepe.com/apis/pg-sandbox"

// PhonePeConfig carries the merchant credentials for the PhonePe PG API.
type PhonePeConfig struct {
	MerchantID     string // e.g. MERCHANTUAT
	MerchantUserID string
	MobileNumber   string
	SaltKey        string // shared secret used for X-VERIFY signing
	SaltIndex      string // key index published alongside the salt
	BaseURL        string // sandbox or production API base
	AppBaseURL     string // public frontend base for redirect/callback URLs
}

type Config struct {
	Port        string
	PostgresURL string
	PhonePe     PhonePeConfig
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	return Config{
		Port:        getEnv("PORT", "3000"),
		PostgresURL: mustEnv("POSTGRES_URL"),
		PhonePe: PhonePeConfig{
			MerchantID:     mustEnv("MERCHANT_ID"),
			MerchantUserID: mustEnv("MERCHANT_USER_ID"),
			MobileNumber:   getEnv("MERCHANT_MOBILE_NUMBER", ""),
			SaltKey:        mustEnv("SALT_KEY"),
			SaltIndex:      mustEnv("SALT_INDEX"),
			BaseURL:        getEnv("PHONEPE_BASE_URL", defaultPhonePeBaseURL),
			AppBaseURL:     mustEnv("APP_BASE_URL"),
		},
	}
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
