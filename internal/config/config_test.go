package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGlobalPath(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		want := "/custom/config/abortr/abortr.yml"
		if got := GlobalPath(); got != want {
			t.Errorf("GlobalPath() = %v, want %v", got, want)
		}
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		_ = os.Unsetenv("XDG_CONFIG_HOME")

		got := GlobalPath()
		if !filepath.IsAbs(got) {
			t.Errorf("GlobalPath() should return absolute path, got %v", got)
		}
		if filepath.Base(got) != "abortr.yml" {
			t.Errorf("GlobalPath() should end with abortr.yml, got %v", got)
		}
	})
}

func TestProjectPath(t *testing.T) {
	if got := ProjectPath(); got != "abortr.yml" {
		t.Errorf("ProjectPath() = %v, want abortr.yml", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("default log_level = %q, want info", cfg.LogLevel)
	}
	if cfg.LogFile != "" {
		t.Errorf("default log_file = %q, want empty", cfg.LogFile)
	}
	if cfg.ToolTimeout != "" {
		t.Errorf("default tool_timeout = %q, want empty", cfg.ToolTimeout)
	}
	if cfg.Port != 0 {
		t.Errorf("default port = %d, want 0", cfg.Port)
	}
}

func TestLoadPrecedence(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))

	// Global config sets log_level and port
	if err := WriteGlobal(&Config{LogLevel: "warn", Port: 9100}); err != nil {
		t.Fatalf("WriteGlobal failed: %v", err)
	}

	// Project config overrides log_level only
	if err := WriteProject(&Config{LogLevel: "debug", Port: 9100}); err != nil {
		t.Fatalf("WriteProject failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("project config should win, log_level = %q", cfg.LogLevel)
	}
	if cfg.Port != 9100 {
		t.Errorf("port = %d, want 9100", cfg.Port)
	}

	// ENV beats both config files
	t.Setenv("ABORTR_LOG_LEVEL", "error")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("env should win, log_level = %q", cfg.LogLevel)
	}
}

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))

	t.Run("no config exists", func(t *testing.T) {
		if Exists() {
			t.Error("Exists() should be false with no config files")
		}
	})

	t.Run("project config exists", func(t *testing.T) {
		if err := WriteProject(&Config{LogLevel: "info"}); err != nil {
			t.Fatalf("WriteProject failed: %v", err)
		}
		if !Exists() {
			t.Error("Exists() should be true after writing project config")
		}
	})
}

func TestTimeout(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Duration
		wantErr bool
	}{
		{"empty disables timeout", "", 0, false},
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "2m", 2 * time.Minute, false},
		{"garbage", "soon", 0, true},
		{"negative", "-5s", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{ToolTimeout: tt.value}
			got, err := cfg.Timeout()
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("Timeout() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Timeout() = %v, want %v", got, tt.want)
			}
		})
	}
}
