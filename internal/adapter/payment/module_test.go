package payment

import (
	"io"
	"log/slog"
	"testing"

	"github.com/dormdine/dormdine/internal/config"
)

func TestNewClientUsesConfig(t *testing.T) {
	cfg := &config.Config{PaymentGatewayAddress: "http://gateway.example", PaymentSecretKey: "sk_test"}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	client, err := newClient(clientParams{Config: cfg, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("expected client instance")
	}
}

func TestNewClientInvalidURL(t *testing.T) {
	cfg := &config.Config{PaymentGatewayAddress: "/relative"}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if _, err := newClient(clientParams{Config: cfg, Logger: logger}); err == nil {
		t.Fatal("expected error for relative gateway url")
	}
}
