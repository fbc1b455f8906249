package initializers

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	// DatabaseURL is a MySQL DSN. When empty the store falls back to a
	// local SQLite file, which is all a single-node storefront needs.
	DatabaseURL string `envconfig:"DATABASE_URL"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"storefront.db"`

	SessionSecret   string `envconfig:"SESSION_SECRET" required:"true"`
	SessionTTLHours int    `envconfig:"SESSION_TTL_HOURS" default:"24"`

	PaymentAPIKey  string `envconfig:"API_KEY" required:"true"`
	PaymentBaseURL string `envconfig:"PAYMENT_BASE_URL"`

	AppDomain string `envconfig:"APP_DOMAIN" default:"http://localhost:8080"`
	ImageDir  string `envconfig:"IMAGE_DIR" default:"static/images"`
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
