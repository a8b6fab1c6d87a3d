package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/rs/zerolog"
)

func TestConfigFromStrings(t *testing.T) {
	tests := []struct {
		level, format string
		want          Config
	}{
		{level: "DEBUG", format: "text", want: Config{Level: DebugLevel, Pretty: true}},
		{level: "info", format: "json", want: Config{Level: InfoLevel, Pretty: false}},
		{level: " warn ", format: "", want: Config{Level: WarnLevel, Pretty: false}},
	}

	for _, tt := range tests {
		got := ConfigFromStrings(tt.level, tt.format)
		if got.Level != tt.want.Level || got.Pretty != tt.want.Pretty {
			t.Errorf("ConfigFromStrings(%q, %q) = %+v, want %+v", tt.level, tt.format, got, tt.want)
		}
	}
}

func TestConfigureJSONOutput(t *testing.T) {
	defer Configure(Config{Level: InfoLevel, Pretty: true, Output: os.Stdout})

	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})

	Info().Msg("dropped")
	lgr := WithField("student_id", "A10")
	lgr.Warn().Msg("kept")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a single JSON line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "kept" {
		t.Errorf("message = %v, want kept", entry["message"])
	}
	if entry["student_id"] != "A10" {
		t.Errorf("student_id = %v, want A10", entry["student_id"])
	}
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Errorf("global level = %v, want warn", zerolog.GlobalLevel())
	}
}

func TestZerologLevel(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  zerolog.Level
	}{
		{level: DebugLevel, want: zerolog.DebugLevel},
		{level: InfoLevel, want: zerolog.InfoLevel},
		{level: WarnLevel, want: zerolog.WarnLevel},
		{level: ErrorLevel, want: zerolog.ErrorLevel},
		{level: "fatal", want: zerolog.InfoLevel},
		{level: "", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := tt.level.zerologLevel(); got != tt.want {
			t.Errorf("LogLevel(%q).zerologLevel() = %v, want %v", tt.level, got, tt.want)
		}
	}
}
