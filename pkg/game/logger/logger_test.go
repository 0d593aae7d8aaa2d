package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"roomcarve/pkg/game/config"
)

func TestNew_LevelAndFormat(t *testing.T) {
	log, err := New(config.Logging{Level: "debug", Format: "json"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", log.GetLevel())
	}
	if _, ok := log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("formatter = %T, want *logrus.JSONFormatter", log.Formatter)
	}
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	log, err := New(config.Logging{Level: "loud"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", log.GetLevel())
	}
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "roomcarve.log")
	log, err := New(config.Logging{Level: "info", Format: "text", FilePath: path, FileMaxSizeMB: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.WithField("rooms", 4).Info("Level generated")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "Level generated") || !strings.Contains(string(data), "rooms=4") {
		t.Errorf("log file = %q, want the logged entry", data)
	}
}
