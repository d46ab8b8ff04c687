package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadGlobalConfigReadsFile(t *testing.T) {
	tempDir := t.TempDir()
	restore := SetUserHomeDirForTest(func() (string, error) {
		return tempDir, nil
	})
	t.Cleanup(restore)

	path := filepath.Join(tempDir, ".regnav", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(`{"schemaVersion":1,"service":{"url":"http://scoring:5000"}}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, present, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !present {
		t.Fatalf("expected config to be present")
	}
	if cfg.Service == nil || cfg.Service.URL == nil || *cfg.Service.URL != "http://scoring:5000" {
		t.Fatalf("expected service url, got %#v", cfg.Service)
	}
	if cfg.Service.RequestTimeoutSeconds != nil {
		t.Fatalf("expected requestTimeoutSeconds to be nil, got %#v", cfg.Service.RequestTimeoutSeconds)
	}
}

func TestLoadGlobalConfigMissingFileSkips(t *testing.T) {
	tempDir := t.TempDir()
	restore := SetUserHomeDirForTest(func() (string, error) {
		return tempDir, nil
	})
	t.Cleanup(restore)

	cfg, present, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if present {
		t.Fatalf("expected config to be missing")
	}
	if cfg != (RawConfig{}) {
		t.Fatalf("expected empty config, got %#v", cfg)
	}
}

func TestLoadConfigFileMalformedSkips(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.json")
	if err := os.WriteFile(path, []byte(`{"service":`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, present, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if present {
		t.Fatalf("malformed config must be skipped, not fail")
	}
	if cfg != (RawConfig{}) {
		t.Fatalf("expected empty config, got %#v", cfg)
	}
}

func TestLoadConfigFileUnsupportedSchemaSkips(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.json")
	if err := os.WriteFile(path, []byte(`{"schemaVersion":99,"service":{"url":"http://x"}}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, present, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if present {
		t.Fatalf("unsupported schema version must be skipped")
	}
}

func TestLoadConfigProjectOverridesGlobal(t *testing.T) {
	homeDir := t.TempDir()
	restore := SetUserHomeDirForTest(func() (string, error) {
		return homeDir, nil
	})
	t.Cleanup(restore)

	globalPath := filepath.Join(homeDir, ".regnav", "config.json")
	if err := os.MkdirAll(filepath.Dir(globalPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(globalPath, []byte(`{"service":{"url":"http://global:5000","requestTimeoutSeconds":60}}`), 0o644); err != nil {
		t.Fatalf("write global config: %v", err)
	}

	projectRoot := t.TempDir()
	projectPath := filepath.Join(projectRoot, ".regnav", "config.json")
	if err := os.MkdirAll(filepath.Dir(projectPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(projectPath, []byte(`{"service":{"url":"http://project:5000"}}`), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	resolved, err := LoadConfig(projectRoot)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if resolved.Service.URL != "http://project:5000" {
		t.Fatalf("url = %q, want project value", resolved.Service.URL)
	}
	if resolved.Service.RequestTimeoutSeconds != 60 {
		t.Fatalf("timeout = %d, want global value 60", resolved.Service.RequestTimeoutSeconds)
	}
}
