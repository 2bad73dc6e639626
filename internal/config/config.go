package config

import (
	"log"
	"os"
)

type Config struct {
	Port            string
	DBDSN           string
	JWTKey          string
	StripeSecretKey string
	SendGridAPIKey  string
	OrderConfirmURL string
	LogFile         string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "tshirtshop.db"
	} // sqlite file in project root
	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		jwtKey = "dev-only-secret"
		log.Printf("[config] JWT_KEY not set, using insecure dev default")
	}
	confirmURL := os.Getenv("ORDER_CONFIRM_URL")
	if confirmURL == "" {
		confirmURL = "http://localhost/order/status"
	}

	cfg := Config{
		Port:            port,
		DBDSN:           dsn,
		JWTKey:          jwtKey,
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		SendGridAPIKey:  os.Getenv("SENDGRID_API_KEY"),
		OrderConfirmURL: confirmURL,
		LogFile:         os.Getenv("LOG_FILE"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s ORDER_CONFIRM_URL=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.OrderConfirmURL, cfg.LogFile)
	return cfg
}
