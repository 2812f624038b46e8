package envprobe

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// namePattern accepts alphanumerics, hyphens, and underscores, length >= 2.
var namePattern = regexp.MustCompile(`^[\w-]{2,}$`)

// InvalidDirNameError reports a working directory whose name cannot be used
// as a project name.
type InvalidDirNameError struct {
	Name string
}

func (e *InvalidDirNameError) Error() string {
	return fmt.Sprintf("invalid directory name %q: must contain only alphanumeric characters, hyphens, or underscores and be at least 2 characters", e.Name)
}

// DependencyNotInstalledError reports a required package missing from the
// local environment.
type DependencyNotInstalledError struct {
	Package string
	Err     error
}

func (e *DependencyNotInstalledError) Error() string {
	return fmt.Sprintf("%s is not installed: install it before proceeding", e.Package)
}

func (e *DependencyNotInstalledError) Unwrap() error { return e.Err }

// CurrentDirName returns the base name of the current working directory.
func CurrentDirName() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return filepath.Base(wd), nil
}

// ValidateDirName checks that name is usable as a project name.
func ValidateDirName(name string) error {
	if !namePattern.MatchString(name) {
		return &InvalidDirNameError{Name: name}
	}
	return nil
}

// Probe looks up external environment state.
type Probe struct {
	// Python overrides the interpreter used for distribution metadata
	// lookups. Empty means auto-detect (python3, then python).
	Python string
}

// versionScript queries the installed kedro distribution the same way
// `importlib.metadata.version("kedro")` does, without importing kedro itself.
const versionScript = `import importlib.metadata, sys
try:
    print(importlib.metadata.version("kedro"))
except importlib.metadata.PackageNotFoundError:
    sys.exit(3)
`

// FrameworkVersion returns the installed Kedro version. The result is
// canonicalized through semver when it parses; pre-release and dev builds
// that don't are passed through verbatim.
func (p *Probe) FrameworkVersion(ctx context.Context) (string, error) {
	python, err := p.interpreter()
	if err != nil {
		return "", &DependencyNotInstalledError{Package: "kedro", Err: err}
	}

	cmd := exec.CommandContext(ctx, python, "-c", versionScript)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &DependencyNotInstalledError{Package: "kedro", Err: fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))}
	}

	raw := strings.TrimSpace(stdout.String())
	if raw == "" {
		return "", &DependencyNotInstalledError{Package: "kedro"}
	}

	if v, err := semver.NewVersion(raw); err == nil {
		return v.String(), nil
	}
	return raw, nil
}

// interpreter locates the Python interpreter used for metadata lookups.
func (p *Probe) interpreter() (string, error) {
	if p.Python != "" {
		return exec.LookPath(p.Python)
	}
	if path, err := exec.LookPath("python3"); err == nil {
		return path, nil
	}
	return exec.LookPath("python")
}
