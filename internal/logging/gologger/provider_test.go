package gologger_test

import (
	"testing"

	experiences "github.com/goliatone/go-experiences"
	"github.com/goliatone/go-experiences/blocks"
	"github.com/goliatone/go-experiences/internal/logging/gologger"
	"github.com/goliatone/go-experiences/pkg/interfaces"
	"github.com/goliatone/go-experiences/publish"
)

func TestNewProviderFormats(t *testing.T) {
	for _, format := range []string{"", "json", "console", "pretty"} {
		if _, err := gologger.NewProvider(gologger.Config{Format: format}); err != nil {
			t.Fatalf("format %q rejected: %v", format, err)
		}
	}
	if _, err := gologger.NewProvider(gologger.Config{Format: "xml"}); err == nil {
		t.Fatal("unsupported format accepted")
	}
}

func TestProviderSuppliesModuleLoggers(t *testing.T) {
	provider, err := gologger.NewProvider(gologger.Config{Level: "error", Format: "json"})
	if err != nil {
		t.Fatalf("NewProvider returned error: %v", err)
	}

	var _ interfaces.LoggerProvider = provider

	logger := provider.GetLogger("experiences.builder")
	if logger == nil {
		t.Fatal("expected logger from go-logger provider, got nil")
	}

	fields, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		t.Fatalf("provider logger %T does not support structured fields", logger)
	}
	if fields.WithFields(map[string]any{"module": "experiences.builder"}) == nil {
		t.Fatal("WithFields returned nil logger")
	}
}

func TestNilProviderFallsBackToNoOp(t *testing.T) {
	var provider *gologger.Provider

	logger := provider.GetLogger("experiences.builder")
	if logger == nil {
		t.Fatal("nil provider returned nil logger")
	}
	// Must not panic.
	logger.Info("event", "key", "value")
}

func TestProviderWiresIntoEngine(t *testing.T) {
	provider, err := gologger.NewProvider(gologger.Config{Level: "error", Format: "json"})
	if err != nil {
		t.Fatalf("NewProvider returned error: %v", err)
	}

	engine := experiences.New(experiences.Config{
		Store:  publish.NewMemoryStore(),
		Logger: provider,
	})

	session := engine.NewSession()
	if _, created := session.Add(blocks.TypeFAQ); !created {
		t.Fatal("session backed by the go-logger provider refused a block add")
	}
}
