package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "BUDGETS_TABLE", "SESSION_TTL", "REDIS_URL", "BACKEND_HEADERS",
		"RECONCILIATION_TOLERANCE", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK", "CURRENCY_SYMBOL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr())
	}
	if cfg.BudgetsTable != "budgets" {
		t.Errorf("BudgetsTable = %q, want default", cfg.BudgetsTable)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Errorf("SessionTTL = %v, want 12h", cfg.SessionTTL)
	}
	if cfg.RedisURL != "" {
		t.Errorf("RedisURL = %q, want empty", cfg.RedisURL)
	}
	if len(cfg.BackendHeaders) != 0 {
		t.Errorf("BackendHeaders = %v, want empty", cfg.BackendHeaders)
	}
	if cfg.ReconciliationTolerance.String() != "0.01" {
		t.Errorf("ReconciliationTolerance = %s, want 0.01", cfg.ReconciliationTolerance)
	}
	if cfg.PaymentGatewayMock {
		t.Errorf("PaymentGatewayMock = true, want false")
	}
	if cfg.CurrencySymbol != "R$" {
		t.Errorf("CurrencySymbol = %q, want R$", cfg.CurrencySymbol)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("BACKEND_HEADERS", "Authorization=Bearer abc, X-Tenant = loja1")
	t.Setenv("RECONCILIATION_TOLERANCE", "0.5")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("TIMEZONE", "UTC")

	cfg := Load()

	if cfg.Addr() != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Addr())
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v, want 30m", cfg.SessionTTL)
	}
	if cfg.BackendHeaders["Authorization"] != "Bearer abc" || cfg.BackendHeaders["X-Tenant"] != "loja1" {
		t.Errorf("BackendHeaders = %v", cfg.BackendHeaders)
	}
	if cfg.ReconciliationTolerance.String() != "0.5" {
		t.Errorf("ReconciliationTolerance = %s, want 0.5", cfg.ReconciliationTolerance)
	}
	if !cfg.PaymentGatewayMock {
		t.Errorf("PaymentGatewayMock = false, want true")
	}
	if cfg.Locale().Location != time.UTC {
		t.Errorf("Locale location = %v, want UTC", cfg.Locale().Location)
	}
}

func TestLoadInvalidEnvFallsBackToDefault(t *testing.T) {
	t.Setenv("SESSION_TTL", "forever")
	t.Setenv("RECONCILIATION_TOLERANCE", "-1")
	t.Setenv("BACKEND_HEADERS", "broken,=x")
	t.Setenv("TIMEZONE", "Mars/Olympus")

	cfg := Load()

	if cfg.SessionTTL != 12*time.Hour {
		t.Errorf("SessionTTL = %v, want default 12h on invalid input", cfg.SessionTTL)
	}
	if cfg.ReconciliationTolerance.String() != "0.01" {
		t.Errorf("ReconciliationTolerance = %s, want default on invalid input", cfg.ReconciliationTolerance)
	}
	if len(cfg.BackendHeaders) != 0 {
		t.Errorf("BackendHeaders = %v, want empty", cfg.BackendHeaders)
	}
	if cfg.Locale().Location != time.UTC {
		t.Errorf("Locale location = %v, want UTC fallback", cfg.Locale().Location)
	}
}
