package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdirTemp switches into a fresh temp dir so no project config leaks in.
func chdirTemp(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	origWd, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp dir: %v", err)
	}
	return tmpDir
}

func TestGlobalPath(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		want := filepath.Join("/custom/config", "ideaeval", "ideaeval.yml")
		if got := GlobalPath(); got != want {
			t.Errorf("GlobalPath() = %v, want %v", got, want)
		}
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		got := GlobalPath()
		if !filepath.IsAbs(got) {
			t.Errorf("GlobalPath() should return absolute path, got %v", got)
		}
		if filepath.Base(got) != "ideaeval.yml" {
			t.Errorf("GlobalPath() should end with ideaeval.yml, got %v", got)
		}
	})
}

func TestProjectPath(t *testing.T) {
	if got := ProjectPath(); got != "ideaeval.yml" {
		t.Errorf("ProjectPath() = %v, want ideaeval.yml", got)
	}
}

func TestExists(t *testing.T) {
	tmpDir := chdirTemp(t)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))

	if Exists() {
		t.Fatal("Exists() = true, want false when no config files exist")
	}

	if err := WriteProject(Default()); err != nil {
		t.Fatalf("WriteProject() failed: %v", err)
	}
	if !Exists() {
		t.Error("Exists() = false, want true when project config exists")
	}
}

func TestLoadDefaults(t *testing.T) {
	tmpDir := chdirTemp(t)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := Default()
	if *cfg != *want {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadPrecedence(t *testing.T) {
	tmpDir := chdirTemp(t)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))

	global := Default()
	global.ExportDir = "/global/exports"
	global.MarkdownStyle = "light"
	global.LogLevel = "warn"
	if err := WriteGlobal(global); err != nil {
		t.Fatalf("WriteGlobal() failed: %v", err)
	}

	// Project overrides export_dir only
	if err := os.WriteFile(ProjectPath(), []byte("export_dir: ./out\n"), 0644); err != nil {
		t.Fatalf("Failed to write project config: %v", err)
	}

	// Env overrides everything
	t.Setenv("IDEAEVAL_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ExportDir != "./out" {
		t.Errorf("ExportDir = %q, want project value ./out", cfg.ExportDir)
	}
	if cfg.MarkdownStyle != "light" {
		t.Errorf("MarkdownStyle = %q, want global value light", cfg.MarkdownStyle)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want env value debug", cfg.LogLevel)
	}
	if cfg.ExportFormat != "md" {
		t.Errorf("ExportFormat = %q, want default md", cfg.ExportFormat)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := chdirTemp(t)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))

	if err := os.WriteFile(ProjectPath(), []byte("export_dir: [unclosed\n"), 0644); err != nil {
		t.Fatalf("Failed to write project config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() should fail on invalid YAML")
	}
}
