package config

import "os"

// Config holds everything the app reads from the environment at startup.
type Config struct {
	Addr           string
	DatabaseURL    string
	JWTSecret      string
	SendGridAPIKey string
	FromEmail      string
	SupportEmail   string
	BrandName      string
}

func Load() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	brand := os.Getenv("BRAND_NAME")
	if brand == "" {
		brand = "Everest Beauty"
	}

	from := os.Getenv("FROM_EMAIL")
	if from == "" {
		from = "no-reply@everestbeauty.example"
	}

	support := os.Getenv("SUPPORT_EMAIL")
	if support == "" {
		support = from
	}

	return Config{
		Addr:           addr,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		FromEmail:      from,
		SupportEmail:   support,
		BrandName:      brand,
	}
}
