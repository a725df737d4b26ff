package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"optpaircli/internal/config"
)

func TestInitializeLogger(t *testing.T) {
	ResetLoggerForTesting()
	defer ResetLoggerForTesting()

	logFile := filepath.Join(t.TempDir(), "logs", "test.log")

	cfg := config.LoggingConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: logFile,
	}

	logger, err := InitializeLogger(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	if logger == nil {
		t.Fatal("Logger is nil")
	}

	logger.Info("test message", "key", "value")
	CloseLogFile()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	var logEntry map[string]interface{}
	if err := json.Unmarshal(content, &logEntry); err != nil {
		t.Fatalf("Log output is not valid JSON: %v", err)
	}
	if logEntry["msg"] != "test message" {
		t.Errorf("Expected msg='test message', got %v", logEntry["msg"])
	}
	if logEntry["key"] != "value" {
		t.Errorf("Expected key='value', got %v", logEntry["key"])
	}
	if logEntry["level"] != "INFO" {
		t.Errorf("Expected level='INFO', got %v", logEntry["level"])
	}
}

func TestRunIDInjection(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, config.LoggingConfig{Level: "debug", Format: "json"})

	ctx := WithRunID(context.Background(), "run-123")
	logger.InfoContext(ctx, "with run")
	logger.Info("without run")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 log lines, got %d", len(lines))
	}

	var first, second map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("Failed to parse log JSON: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("Failed to parse log JSON: %v", err)
	}
	if first["run_id"] != "run-123" {
		t.Errorf("Expected run_id='run-123', got %v", first["run_id"])
	}
	if _, ok := second["run_id"]; ok {
		t.Errorf("Expected no run_id without context value, got %v", second["run_id"])
	}
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level   string
		logged  []string
		dropped []string
	}{
		{"debug", []string{"d", "i", "w", "e"}, nil},
		{"info", []string{"i", "w", "e"}, []string{"d"}},
		{"warning", []string{"w", "e"}, []string{"d", "i"}},
		{"error", []string{"e"}, []string{"d", "i", "w"}},
		{"bogus", []string{"i", "w", "e"}, []string{"d"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, config.LoggingConfig{Level: tt.level, Format: "json"})
			logger.Debug("d")
			logger.Info("i")
			logger.Warn("w")
			logger.Error("e")

			out := buf.String()
			for _, msg := range tt.logged {
				if !strings.Contains(out, `"msg":"`+msg+`"`) {
					t.Errorf("Expected %q to be logged at level %s", msg, tt.level)
				}
			}
			for _, msg := range tt.dropped {
				if strings.Contains(out, `"msg":"`+msg+`"`) {
					t.Errorf("Expected %q to be dropped at level %s", msg, tt.level)
				}
			}
		})
	}
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, config.LoggingConfig{Level: "info", Format: "text"})
	logger.InfoContext(WithRunID(context.Background(), "abc"), "hello")

	out := buf.String()
	if !strings.Contains(out, "msg=hello") || !strings.Contains(out, "run_id=abc") {
		t.Errorf("Unexpected text output: %s", out)
	}
}

func TestContextHelpers(t *testing.T) {
	ctx := ContextWithRunID(context.Background())
	runID := GetRunID(ctx)
	if runID == "" {
		t.Error("Expected run ID to be generated")
	}

	if GetRunID(EnsureRunID(ctx)) != runID {
		t.Error("EnsureRunID changed existing run ID")
	}
	if GetRunID(EnsureRunID(context.Background())) == "" {
		t.Error("EnsureRunID did not add run ID")
	}
	if GetRunID(context.Background()) != "" {
		t.Error("Expected empty run ID for bare context")
	}
}
