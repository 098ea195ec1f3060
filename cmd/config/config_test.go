package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfigDefault(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	defer os.Chdir(wd)
	viper.Reset()

	if err := os.Chdir(".."); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	LoadConfig("")
	if AppConfig.Server.ListenAddr != "127.0.0.1:8081" {
		t.Fatalf("unexpected listen addr: %s", AppConfig.Server.ListenAddr)
	}
	if AppConfig.Logging.Level != "info" {
		t.Fatalf("unexpected logging level: %s", AppConfig.Logging.Level)
	}
}

func TestLoadConfigOverride(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	defer os.Chdir(wd)
	viper.Reset()

	if err := os.Chdir(".."); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	LoadConfig("local")
	if AppConfig.Server.ListenAddr != "127.0.0.1:18081" {
		t.Fatalf("expected local override of listen_addr, got %s", AppConfig.Server.ListenAddr)
	}
	if AppConfig.Logging.Level != "debug" {
		t.Fatalf("expected local override of logging level, got %s", AppConfig.Logging.Level)
	}
	// Storage is untouched by local.yaml, so the default must still apply.
	if AppConfig.Storage.StatePath != "./data/state" {
		t.Fatalf("expected default storage path to survive a partial override, got %s", AppConfig.Storage.StatePath)
	}
}

func TestLoadConfigSandbox(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "config"), 0o700); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}

	data := []byte("server:\n  listen_addr: sandbox:9090\n")
	if err := os.WriteFile(filepath.Join(root, "config", "default.yaml"), data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	defer os.Chdir(wd)
	viper.Reset()

	if err := os.Chdir(root); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	LoadConfig("")

	if AppConfig.Server.ListenAddr != "sandbox:9090" {
		t.Fatalf("expected listen addr sandbox:9090, got %s", AppConfig.Server.ListenAddr)
	}
}
