package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetup(t *testing.T) {
	Setup("debug", "text")
	if logrus.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug, got %s", logrus.GetLevel())
	}
	if _, ok := logrus.StandardLogger().Formatter.(*logrus.TextFormatter); !ok {
		t.Fatal("expected text formatter")
	}

	Setup("nonsense", "json")
	if logrus.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected fallback to info, got %s", logrus.GetLevel())
	}
	if _, ok := logrus.StandardLogger().Formatter.(*logrus.JSONFormatter); !ok {
		t.Fatal("expected json formatter")
	}
}
