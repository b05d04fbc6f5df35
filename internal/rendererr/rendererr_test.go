package rendererr

import (
	"log/slog"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(new(discardWriter), nil))
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestConfigErrorIsRecoverable(t *testing.T) {
	err := Config("disney", "matte")
	if !err.Recoverable {
		t.Fatal("ConfigError should be recoverable")
	}
	if err.Error() == "" {
		t.Fatal("expected a non-empty message")
	}
}

func TestFatalErrorIsNotRecoverable(t *testing.T) {
	err := Fatal("holographic", nil)
	if err.Recoverable {
		t.Fatal("FatalError should not be recoverable")
	}
}

func TestReportSwallowsRecoverableErrors(t *testing.T) {
	log := discardLogger()
	if err := Report(Config("disney", "matte"), log); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestReportPropagatesFatalErrors(t *testing.T) {
	log := discardLogger()
	cause := Fatal("holographic", nil)
	if err := Report(cause, log); err == nil {
		t.Fatal("expected FatalError to propagate")
	}
}

func TestReportPropagatesInvariantViolations(t *testing.T) {
	log := discardLogger()
	plain := &Error{Kind: InvariantViolation, Name: "nan bound"}
	if err := Report(plain, log); err == nil {
		t.Fatal("expected InvariantViolation to propagate")
	}
}
