package services

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yungbote/smartnotes-backend/internal/logger"
)

func TestNewOpenAIClientDoesNotLogKey(t *testing.T) {
	const secret = "sk-test-n3ver-print"
	t.Setenv("OPENAI_API_KEY", secret)

	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	client, err := NewOpenAIClient(log)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if client.(*openAIClient).apiKey != secret {
		t.Fatal("client should hold the configured key")
	}

	for _, entry := range logs.All() {
		if strings.Contains(entry.Message, secret) {
			t.Fatalf("key leaked into log message %q", entry.Message)
		}
		for _, field := range entry.Context {
			if strings.Contains(field.String, secret) {
				t.Fatalf("key leaked into log field %q", field.Key)
			}
			if s, ok := field.Interface.(string); ok && strings.Contains(s, secret) {
				t.Fatalf("key leaked into log field %q", field.Key)
			}
		}
	}
}

func TestNewOpenAIClientRequiresKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := NewOpenAIClient(testLogger(t)); err == nil {
		t.Fatal("expected an error without OPENAI_API_KEY")
	}
}
