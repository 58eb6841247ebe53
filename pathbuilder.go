package tether

import (
	"os"
	"path/filepath"
)

// ModulePathEnv names the environment variable holding an explicit module
// directory consulted by PathBuilder.
const ModulePathEnv = "TETHER_MODULE_LOAD_PATH"

// moduleDirSuffix is the conventional subdirectory searched for modules.
const moduleDirSuffix = "cli-modules"

// PathBuilder assembles a list of candidate module directories from a set of
// independently toggled locations. All toggles default to off; Build returns
// the enabled locations in a fixed order: environment override, home
// directory, working directory, executable directory. Each directory
// location contributes itself plus its "cli-modules" subdirectory.
type PathBuilder struct {
	fromEnv     bool
	fromHome    bool
	fromWorkDir bool
	fromExecDir bool
}

// NewPathBuilder creates a PathBuilder with all locations disabled.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{}
}

// LoadFromEnv toggles the directory named by ModulePathEnv. The directory is
// included only when it exists; it is resolved to a canonical path and gets
// no suffix entry.
func (b *PathBuilder) LoadFromEnv(load bool) *PathBuilder {
	b.fromEnv = load
	return b
}

// LoadFromHomeDir toggles the user's home directory.
func (b *PathBuilder) LoadFromHomeDir(load bool) *PathBuilder {
	b.fromHome = load
	return b
}

// LoadFromWorkDir toggles the current working directory.
func (b *PathBuilder) LoadFromWorkDir(load bool) *PathBuilder {
	b.fromWorkDir = load
	return b
}

// LoadFromExecDir toggles the running executable's directory.
func (b *PathBuilder) LoadFromExecDir(load bool) *PathBuilder {
	b.fromExecDir = load
	return b
}

// Build returns the assembled directory list. Locations that cannot be
// resolved are skipped silently.
func (b *PathBuilder) Build() []string {
	result := []string{}

	if b.fromEnv {
		if dir := os.Getenv(ModulePathEnv); dir != "" {
			if canonical, err := filepath.EvalSymlinks(dir); err == nil {
				result = append(result, canonical)
			}
		}
	}

	if b.fromHome {
		if home, err := os.UserHomeDir(); err == nil {
			result = append(result, home, filepath.Join(home, moduleDirSuffix))
		}
	}

	if b.fromWorkDir {
		if wd, err := os.Getwd(); err == nil {
			result = append(result, wd, filepath.Join(wd, moduleDirSuffix))
		}
	}

	if b.fromExecDir {
		if exe, err := os.Executable(); err == nil {
			dir := filepath.Dir(exe)
			result = append(result, dir, filepath.Join(dir, moduleDirSuffix))
		}
	}

	return result
}
