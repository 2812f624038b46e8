package fetch

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/kedrogen-labs/kedrogen/internal/logging"
	"github.com/kedrogen-labs/kedrogen/internal/source"
)

// Options controls a fetch.
type Options struct {
	// Checkout is the branch, tag, or commit to check out after a VCS clone.
	Checkout string
	// Directory selects a subdirectory of the fetched tree as the template
	// (for multi-template repositories).
	Directory string
	// Password unlocks password-protected zip archives.
	Password string
	// CloneDir is the parent under which temporary clone/extract trees are
	// created.
	CloneDir string
	// Log receives progress diagnostics.
	Log *logging.Logger
}

// Result is a usable local template directory.
type Result struct {
	// TemplateDir contains the template's manifest and file tree.
	TemplateDir string
	// Temporary reports whether the fetched tree was created by this fetch
	// and should be removed after a successful run. Local sources are used
	// in place and are never temporary.
	Temporary bool

	// cleanupRoot is the tree Cleanup removes; it contains TemplateDir.
	cleanupRoot string
}

// FetchError reports a failed template fetch.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching template from %q: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetch resolves src into a local template directory.
func Fetch(ctx context.Context, src *source.Source, opts Options) (*Result, error) {
	if opts.Log == nil {
		opts.Log = logging.Nop()
	}

	var (
		templateRoot string
		cleanupRoot  string
		temporary    bool
		err          error
	)

	switch src.Kind {
	case source.KindLocalDirectory:
		templateRoot = src.Location
	case source.KindFileURL:
		templateRoot, err = localPathFromFileURL(src.Location)
	case source.KindGit:
		templateRoot, err = cloneGit(ctx, src.Location, opts)
		cleanupRoot, temporary = templateRoot, true
	case source.KindMercurial:
		templateRoot, err = cloneMercurial(ctx, src.Location, opts)
		cleanupRoot, temporary = templateRoot, true
	case source.KindZipArchive:
		templateRoot, cleanupRoot, err = fetchZip(ctx, src.Location, opts)
		temporary = true
	default:
		err = fmt.Errorf("unsupported source kind %v", src.Kind)
	}
	if err != nil {
		if temporary && cleanupRoot != "" {
			os.RemoveAll(cleanupRoot)
		}
		return nil, &FetchError{Source: src.Raw, Err: err}
	}

	templateDir := templateRoot
	if opts.Directory != "" {
		templateDir = filepath.Join(templateRoot, opts.Directory)
		info, statErr := os.Stat(templateDir)
		if statErr != nil || !info.IsDir() {
			if temporary {
				os.RemoveAll(cleanupRoot)
			}
			return nil, &FetchError{
				Source: src.Raw,
				Err:    fmt.Errorf("directory %q not found inside template", opts.Directory),
			}
		}
	}

	opts.Log.Debug("template materialized at %s", templateDir)
	return &Result{TemplateDir: templateDir, Temporary: temporary, cleanupRoot: cleanupRoot}, nil
}

// Cleanup removes the fetched tree if it was temporary. The returned error
// is advisory: the CLI downgrades it to a warning.
func (r *Result) Cleanup() error {
	if !r.Temporary || r.cleanupRoot == "" {
		return nil
	}
	if err := os.RemoveAll(r.cleanupRoot); err != nil {
		return fmt.Errorf("removing temporary template %s: %w", r.cleanupRoot, err)
	}
	return nil
}

// localPathFromFileURL converts a file:// URL to the directory it names.
func localPathFromFileURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parsing file URL: %w", err)
	}
	path := u.Path
	if path == "" {
		path = strings.TrimPrefix(raw, "file://")
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("file URL target: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("file URL target %s is not a directory", path)
	}
	return path, nil
}

// scratchDir creates a fresh directory under the configured clone parent.
func scratchDir(opts Options, pattern string) (string, error) {
	parent := opts.CloneDir
	if parent == "" {
		parent = os.TempDir()
	}
	if err := os.MkdirAll(parent, 0755); err != nil {
		return "", fmt.Errorf("creating clone directory %s: %w", parent, err)
	}
	dir, err := os.MkdirTemp(parent, pattern)
	if err != nil {
		return "", fmt.Errorf("creating scratch directory: %w", err)
	}
	return dir, nil
}
