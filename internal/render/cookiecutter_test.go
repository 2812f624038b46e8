package render

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/kedrogen-labs/kedrogen/internal/envprobe"
)

func TestBuildArgs(t *testing.T) {
	vars := orderedmap.New[string, any]()
	vars.Set("add_ons", nil) // absent marker: must not appear in argv
	vars.Set("project_name", "My Project")
	vars.Set("repo_name", "my-project")

	args := buildArgs("/tmp/tpl", vars, "/tmp/out")

	want := []string{
		"/tmp/tpl", "--no-input", "--output-dir", "/tmp/out",
		"project_name=My Project", "repo_name=my-project",
	}
	if len(args) != len(want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want[i])
		}
	}
	for _, a := range args {
		if strings.HasPrefix(a, "add_ons=") {
			t.Errorf("absent-marker key leaked into argv: %q", a)
		}
	}
}

func TestRenderedRoot(t *testing.T) {
	t.Run("single project dir", func(t *testing.T) {
		out := t.TempDir()
		if err := os.Mkdir(filepath.Join(out, "my-project"), 0755); err != nil {
			t.Fatal(err)
		}

		got, err := renderedRoot("/tmp/tpl", out)
		if err != nil {
			t.Fatalf("renderedRoot() error: %v", err)
		}
		if got != filepath.Join(out, "my-project") {
			t.Errorf("renderedRoot() = %q", got)
		}
	})

	t.Run("empty output", func(t *testing.T) {
		if _, err := renderedRoot("/tmp/tpl", t.TempDir()); err == nil {
			t.Error("expected error for empty output dir")
		}
	})

	t.Run("ambiguous output", func(t *testing.T) {
		out := t.TempDir()
		for _, name := range []string{"a", "b"} {
			if err := os.Mkdir(filepath.Join(out, name), 0755); err != nil {
				t.Fatal(err)
			}
		}
		if _, err := renderedRoot("/tmp/tpl", out); err == nil {
			t.Error("expected error for ambiguous output dir")
		}
	})
}

func TestRenderMissingEngine(t *testing.T) {
	engine := &CookiecutterEngine{Binary: "no-such-cookiecutter-binary"}
	vars := orderedmap.New[string, any]()

	_, err := engine.Render(context.Background(), t.TempDir(), vars, t.TempDir())
	var depErr *envprobe.DependencyNotInstalledError
	if !errors.As(err, &depErr) {
		t.Fatalf("error = %v, want DependencyNotInstalledError", err)
	}
	if depErr.Package != "cookiecutter" {
		t.Errorf("Package = %q", depErr.Package)
	}
}

func TestRenderSurfacesEngineFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub engine scripts require a POSIX shell")
	}

	stub := filepath.Join(t.TempDir(), "cookiecutter-stub")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\necho 'boom' >&2\nexit 2\n"), 0755); err != nil {
		t.Fatal(err)
	}

	engine := &CookiecutterEngine{Binary: stub}
	vars := orderedmap.New[string, any]()

	_, err := engine.Render(context.Background(), t.TempDir(), vars, t.TempDir())
	var renderErr *RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("error = %v, want RenderError", err)
	}
	if !strings.Contains(renderErr.Output, "boom") {
		t.Errorf("stderr not captured: %q", renderErr.Output)
	}
}

var _ Engine = (*CookiecutterEngine)(nil)
