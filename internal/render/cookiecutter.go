package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/kedrogen-labs/kedrogen/internal/compose"
	"github.com/kedrogen-labs/kedrogen/internal/envprobe"
)

// CookiecutterEngine renders templates by invoking the external cookiecutter
// program in non-interactive mode.
type CookiecutterEngine struct {
	// Binary overrides the cookiecutter executable name. Empty means
	// "cookiecutter" resolved through PATH.
	Binary string
}

// NewCookiecutterEngine returns the production engine.
func NewCookiecutterEngine() *CookiecutterEngine {
	return &CookiecutterEngine{}
}

// Render runs `cookiecutter <templateDir> --no-input --output-dir <outputDir>`
// with one key=value override per bound context entry. Absent-marker entries
// are omitted from the override list; cookiecutter then applies the
// template's own default for those variables. The rendered project root is
// the single directory cookiecutter creates under outputDir.
func (e *CookiecutterEngine) Render(ctx context.Context, templateDir string, vars *compose.Context, outputDir string) (string, error) {
	binary := e.Binary
	if binary == "" {
		binary = "cookiecutter"
	}

	path, err := exec.LookPath(binary)
	if err != nil {
		return "", &envprobe.DependencyNotInstalledError{Package: "cookiecutter", Err: err}
	}

	cmd := exec.CommandContext(ctx, path, buildArgs(templateDir, vars, outputDir)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &RenderError{
			TemplateDir: templateDir,
			Output:      strings.TrimSpace(stderr.String()),
			Err:         err,
		}
	}

	return renderedRoot(templateDir, outputDir)
}

// buildArgs assembles the cookiecutter argv: template, mode flags, then
// overrides in context order.
func buildArgs(templateDir string, vars *compose.Context, outputDir string) []string {
	args := []string{templateDir, "--no-input", "--output-dir", outputDir}
	for pair := vars.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == nil {
			continue
		}
		args = append(args, fmt.Sprintf("%s=%v", pair.Key, pair.Value))
	}
	return args
}

// renderedRoot locates the project directory the renderer created. outputDir
// is a fresh scratch directory, so exactly one entry is expected.
func renderedRoot(templateDir, outputDir string) (string, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return "", &RenderError{TemplateDir: templateDir, Err: fmt.Errorf("reading render output: %w", err)}
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	if len(dirs) != 1 {
		return "", &RenderError{
			TemplateDir: templateDir,
			Err:         fmt.Errorf("expected exactly one rendered project under %s, found %d", outputDir, len(dirs)),
		}
	}
	return filepath.Join(outputDir, dirs[0]), nil
}
