package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Environment    Environment
	Log            Log
	HTTP           HTTPServer
	BaseURL        string   `env:"BASE_URL" envDefault:"http://localhost:3000"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// enables POST /api/purchase, which records purchases without payment
	AllowDemoPurchases bool `env:"ALLOW_DEMO_PURCHASES" envDefault:"false"`

	Database Database `envPrefix:"DATABASE_"`
	Auth     Auth     `envPrefix:"AUTH_"`
	Payment  Payment  `envPrefix:"PAYMENT_"`
	Stripe   Stripe   `envPrefix:"STRIPE_"`
	Paypal   Paypal   `envPrefix:"PAYPAL_"`
	Redis    Redis    `envPrefix:"REDIS_"`
	S3       S3       `envPrefix:"S3_"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

type Database struct {
	Driver string `env:"DRIVER" envDefault:"sqlite"` // sqlite, postgres, mysql
	URL    string `env:"URL" envDefault:"file:scriptmarket.db?_foreign_keys=on"`
}

type Auth struct {
	JWTSecret    string        `env:"JWT_SECRET"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
	CookieName   string        `env:"COOKIE_NAME" envDefault:"session"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`
}

type Payment struct {
	Provider string `env:"PROVIDER" envDefault:"stripe"` // stripe, paypal
	Currency string `env:"CURRENCY" envDefault:"usd"`
}

type Stripe struct {
	SecretKey     string `env:"SECRET_KEY"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`
}

type Paypal struct {
	BaseApiURL   string `env:"BASE_API_URL" envDefault:"https://api-m.sandbox.paypal.com"`
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	WebhookID    string `env:"WEBHOOK_ID"`
	RedirectURL  string `env:"REDIRECT_URL"`
}

type Redis struct {
	Addr     string        `env:"ADDR"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	CartTTL  time.Duration `env:"CART_TTL" envDefault:"720h"`
}

type S3 struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Region    string `env:"REGION" envDefault:"us-east-1"`
	Bucket    string `env:"BUCKET" envDefault:"scripts"`
	Prefix    string `env:"PREFIX" envDefault:"scripts/"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"true"`
}

// Load parses the process environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment.Name, "production")
}

func (c *Config) ServerAddress() string {
	return c.HTTP.Host + ":" + c.HTTP.Port
}

// DemoPurchasesEnabled never allows the unpaid purchase path in production.
func (c *Config) DemoPurchasesEnabled() bool {
	return c.AllowDemoPurchases && !c.IsProduction()
}

func (c *Config) PaypalRedirectURL() string {
	if c.Paypal.RedirectURL != "" {
		return c.Paypal.RedirectURL
	}
	return strings.TrimRight(c.BaseURL, "/") + "/api/paypal/success"
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var problems []string

	switch c.Database.Driver {
	case "sqlite", "postgres", "mysql":
	default:
		problems = append(problems, fmt.Sprintf("DATABASE_DRIVER %q is not one of sqlite, postgres, mysql", c.Database.Driver))
	}
	if c.Database.URL == "" {
		problems = append(problems, "DATABASE_URL is required")
	}

	switch c.Payment.Provider {
	case "stripe", "paypal":
	default:
		problems = append(problems, fmt.Sprintf("PAYMENT_PROVIDER %q is not one of stripe, paypal", c.Payment.Provider))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not one of debug, info, warn, error", c.Log.Level))
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		problems = append(problems, fmt.Sprintf("LOG_FORMAT %q is not one of json, text", c.Log.Format))
	}

	if c.IsProduction() {
		if len(c.Auth.JWTSecret) < 32 {
			problems = append(problems, "AUTH_JWT_SECRET must be at least 32 characters in production")
		}
		if c.Stripe.SecretKey != "" && c.Stripe.WebhookSecret == "" {
			problems = append(problems, "STRIPE_WEBHOOK_SECRET is required in production")
		}
	} else if c.Auth.JWTSecret == "" {
		c.Auth.JWTSecret = "dev-secret-change-me"
	}

	if c.Auth.TokenTTL <= 0 {
		problems = append(problems, "AUTH_TOKEN_TTL must be positive")
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}
