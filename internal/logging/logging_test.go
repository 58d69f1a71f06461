package logging_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-experiences/internal/logging"
	"github.com/goliatone/go-experiences/pkg/interfaces"
)

type recordingLogger struct {
	fields map[string]any
}

func (l *recordingLogger) Trace(string, ...any) {}
func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Info(string, ...any)  {}
func (l *recordingLogger) Warn(string, ...any)  {}
func (l *recordingLogger) Error(string, ...any) {}
func (l *recordingLogger) Fatal(string, ...any) {}

func (l *recordingLogger) WithContext(context.Context) interfaces.Logger { return l }

func (l *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	merged := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &recordingLogger{fields: merged}
}

type recordingProvider struct {
	requested []string
}

func (p *recordingProvider) GetLogger(name string) interfaces.Logger {
	p.requested = append(p.requested, name)
	return &recordingLogger{}
}

func TestModuleLoggerDefaultsToNoOp(t *testing.T) {
	logger := logging.ModuleLogger(nil, "experiences.builder")
	if logger == nil {
		t.Fatal("nil logger returned")
	}
	// Must not panic without a provider.
	logger.Info("event", "key", "value")
}

func TestModuleLoggerAttachesModuleField(t *testing.T) {
	provider := &recordingProvider{}

	logger := logging.BuilderLogger(provider)

	if len(provider.requested) != 1 || provider.requested[0] != "experiences.builder" {
		t.Fatalf("requested modules = %v", provider.requested)
	}
	rec, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("unexpected logger type %T", logger)
	}
	if rec.fields["module"] != "experiences.builder" {
		t.Fatalf("module field = %v", rec.fields["module"])
	}
}

func TestWithFieldsCopiesInput(t *testing.T) {
	base := &recordingLogger{}
	fields := map[string]any{"command": "save"}

	logger := logging.WithFields(base, fields)
	fields["command"] = "mutated"

	rec := logger.(*recordingLogger)
	if rec.fields["command"] != "save" {
		t.Fatalf("caller mutation leaked: %v", rec.fields["command"])
	}
}

func TestWithFieldsOnPlainLogger(t *testing.T) {
	logger := logging.NoOp()
	if got := logging.WithFields(logger, nil); got != logger {
		t.Fatal("nil fields should return the logger unchanged")
	}
}
