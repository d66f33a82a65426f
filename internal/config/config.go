package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	JWTSecret       string
	TokenTTL        time.Duration
	ShutdownTimeout time.Duration

	PaymentAddress    string
	PaymentAPIKey     string
	PaymentSuccessURL string
	PaymentCancelURL  string
	Currency          string

	FileStoreAddress string
	FileStoreAPIKey  string
	FileStoreFolder  string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
}

const (
	defaultRunAddress        = ":8080"
	defaultJWTSecret         = "change-me-in-production"
	defaultTokenTTL          = 24 * time.Hour
	defaultShutdownTimeout   = 10 * time.Second
	defaultCurrency          = "egp"
	defaultPaymentSuccessURL = "http://localhost:3000/checkout/success"
	defaultPaymentCancelURL  = "http://localhost:3000/checkout/cancel"
	defaultFileStoreFolder   = "gophershop"
	defaultSMTPHost          = "localhost"
	defaultSMTPPort          = 587
	defaultMailFrom          = "no-reply@gophershop.local"
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		JWTSecret:         getString(lookup, "JWT_SECRET", defaultJWTSecret),
		TokenTTL:          getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		PaymentAddress:    getString(lookup, "PAYMENT_ADDRESS", ""),
		PaymentAPIKey:     getString(lookup, "PAYMENT_API_KEY", ""),
		PaymentSuccessURL: getString(lookup, "PAYMENT_SUCCESS_URL", defaultPaymentSuccessURL),
		PaymentCancelURL:  getString(lookup, "PAYMENT_CANCEL_URL", defaultPaymentCancelURL),
		Currency:          getString(lookup, "CURRENCY", defaultCurrency),
		FileStoreAddress:  getString(lookup, "FILE_STORE_ADDRESS", ""),
		FileStoreAPIKey:   getString(lookup, "FILE_STORE_API_KEY", ""),
		FileStoreFolder:   getString(lookup, "FILE_STORE_FOLDER", defaultFileStoreFolder),
		SMTPHost:          getString(lookup, "SMTP_HOST", defaultSMTPHost),
		SMTPPort:          getInt(lookup, "SMTP_PORT", defaultSMTPPort),
		SMTPUser:          getString(lookup, "SMTP_USER", ""),
		SMTPPassword:      getString(lookup, "SMTP_PASSWORD", ""),
		MailFrom:          getString(lookup, "MAIL_FROM", defaultMailFrom),
	}

	fs := flag.NewFlagSet("gophershop", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Auth token lifetime")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.PaymentAddress, "payment", cfg.PaymentAddress, "Payment gateway base URL")
	fs.StringVar(&cfg.FileStoreAddress, "filestore", cfg.FileStoreAddress, "File store base URL")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.PaymentAddress == "" {
		return nil, fmt.Errorf("payment gateway address must be provided")
	}

	if cfg.FileStoreAddress == "" {
		return nil, fmt.Errorf("file store address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
