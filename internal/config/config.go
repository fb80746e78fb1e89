package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"comercial_moveis/internal/format"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port string

	AWSRegion        string
	DynamoDBEndpoint string
	BudgetsTable     string
	ContractsTable   string
	PaymentsTable    string

	RedisURL   string
	SessionTTL time.Duration

	BackendAPIURL  string
	BackendTimeout time.Duration
	BackendHeaders map[string]string

	ReconciliationTolerance decimal.Decimal

	CurrencySymbol   string
	DecimalSeparator string
	GroupSeparator   string
	DateLayout       string
	Timezone         string

	MercadoPagoAccessToken     string
	MercadoPagoTestPayerEmail  string
	MercadoPagoTestPayerUserID string
	PaymentGatewayMock         bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:                       envOrDefault("PORT", "8080"),
		AWSRegion:                  envOrDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint:           envOrDefault("DYNAMODB_ENDPOINT", ""),
		BudgetsTable:               envOrDefault("BUDGETS_TABLE", "budgets"),
		ContractsTable:             envOrDefault("CONTRACTS_TABLE", "contracts"),
		PaymentsTable:              envOrDefault("PAYMENTS_TABLE", "contract_payments"),
		RedisURL:                   envOrDefault("REDIS_URL", ""),
		SessionTTL:                 envOrDefaultDuration("SESSION_TTL", 12*time.Hour),
		BackendAPIURL:              envOrDefault("BACKEND_API_URL", "http://localhost:3000"),
		BackendTimeout:             envOrDefaultDuration("BACKEND_TIMEOUT", 10*time.Second),
		BackendHeaders:             envHeaders("BACKEND_HEADERS"),
		ReconciliationTolerance:    envOrDefaultDecimal("RECONCILIATION_TOLERANCE", decimal.New(1, -2)),
		CurrencySymbol:             envOrDefault("CURRENCY_SYMBOL", "R$"),
		DecimalSeparator:           envOrDefault("DECIMAL_SEPARATOR", ","),
		GroupSeparator:             envOrDefault("GROUP_SEPARATOR", "."),
		DateLayout:                 envOrDefault("DATE_LAYOUT", "02/01/2006"),
		Timezone:                   envOrDefault("TIMEZONE", "America/Sao_Paulo"),
		MercadoPagoAccessToken:     envOrDefault("MERCADOPAGO_ACCESS_TOKEN", ""),
		MercadoPagoTestPayerEmail:  envOrDefault("MERCADOPAGO_TEST_PAYER_EMAIL", ""),
		MercadoPagoTestPayerUserID: envOrDefault("MERCADOPAGO_TEST_PAYER_USER_ID", ""),
		PaymentGatewayMock:         envBool("PAYMENT_GATEWAY_MOCK") || envBool("MERCADOPAGO_MOCK"),
	}
}

// Locale builds the display conventions used by formatters and DTOs.
func (c Config) Locale() format.Locale {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		slog.Warn("unknown timezone, using UTC", "timezone", c.Timezone, "error", err)
		loc = time.UTC
	}
	return format.Locale{
		CurrencySymbol:   c.CurrencySymbol,
		DecimalSeparator: c.DecimalSeparator,
		GroupSeparator:   c.GroupSeparator,
		DateLayout:       c.DateLayout,
		Location:         loc,
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return d
	}
	return defaultVal
}

func envOrDefaultDecimal(key string, defaultVal decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil || !d.IsPositive() {
			slog.Warn("invalid decimal env var, using default", "key", key, "value", v, "default", defaultVal.String())
			return defaultVal
		}
		return d
	}
	return defaultVal
}

func envBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

// envHeaders parses "Key=Value,Other=Value" pairs. Malformed pairs are skipped.
func envHeaders(key string) map[string]string {
	headers := map[string]string{}
	v := os.Getenv(key)
	if v == "" {
		return headers
	}
	for _, pair := range strings.Split(v, ",") {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			slog.Warn("invalid header pair in env var, skipping", "key", key, "pair", pair)
			continue
		}
		headers[name] = strings.TrimSpace(value)
	}
	return headers
}

// Port numbers are accepted with or without the leading colon.
func (c Config) Addr() string {
	if _, err := strconv.Atoi(c.Port); err == nil {
		return ":" + c.Port
	}
	return c.Port
}
