package tether

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathBuilder_EmptyByDefault(t *testing.T) {
	if paths := NewPathBuilder().Build(); len(paths) != 0 {
		t.Errorf("expected no paths, got %v", paths)
	}
}

func TestPathBuilder_EnvDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ModulePathEnv, dir)

	paths := NewPathBuilder().LoadFromEnv(true).Build()
	if len(paths) != 1 {
		t.Fatalf("expected 1 path, got %v", paths)
	}

	canonical, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}
	if paths[0] != canonical {
		t.Errorf("expected %q, got %q", canonical, paths[0])
	}
}

func TestPathBuilder_EnvUnset(t *testing.T) {
	t.Setenv(ModulePathEnv, "")

	if paths := NewPathBuilder().LoadFromEnv(true).Build(); len(paths) != 0 {
		t.Errorf("expected no paths with the variable unset, got %v", paths)
	}
}

func TestPathBuilder_EnvNonexistentDirSkipped(t *testing.T) {
	t.Setenv(ModulePathEnv, filepath.Join(t.TempDir(), "nope"))

	if paths := NewPathBuilder().LoadFromEnv(true).Build(); len(paths) != 0 {
		t.Errorf("expected nonexistent directory to be skipped, got %v", paths)
	}
}

func TestPathBuilder_WorkDirWithSuffix(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	paths := NewPathBuilder().LoadFromWorkDir(true).Build()
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %v", paths)
	}
	if paths[0] != wd {
		t.Errorf("expected %q first, got %q", wd, paths[0])
	}
	if paths[1] != filepath.Join(wd, "cli-modules") {
		t.Errorf("expected cli-modules suffix entry, got %q", paths[1])
	}
}

func TestPathBuilder_HomeDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	paths := NewPathBuilder().LoadFromHomeDir(true).Build()
	if len(paths) != 2 || paths[0] != home {
		t.Errorf("expected [%q, %q/cli-modules], got %v", home, home, paths)
	}
}

func TestPathBuilder_Order(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ModulePathEnv, dir)

	paths := NewPathBuilder().
		LoadFromWorkDir(true).
		LoadFromEnv(true).
		Build()

	if len(paths) != 3 {
		t.Fatalf("expected 3 paths, got %v", paths)
	}

	canonical, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}
	// Env always precedes the working directory regardless of toggle order.
	if paths[0] != canonical {
		t.Errorf("expected env path first, got %q", paths[0])
	}
}

func TestPathBuilder_ToggleOff(t *testing.T) {
	paths := NewPathBuilder().
		LoadFromWorkDir(true).
		LoadFromWorkDir(false).
		Build()

	if len(paths) != 0 {
		t.Errorf("expected toggling off to remove the location, got %v", paths)
	}
}
