package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/yeka/zip"
)

// fetchZip materializes a zip template (local or remote) into a scratch
// directory. The archive must contain exactly one top-level directory, which
// becomes the template root; the extraction directory itself is returned as
// the cleanup root.
func fetchZip(ctx context.Context, location string, opts Options) (templateRoot, cleanupRoot string, err error) {
	archive := location
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		downloaded, cleanup, err := downloadArchive(ctx, location, opts)
		if err != nil {
			return "", "", err
		}
		defer cleanup()
		archive = downloaded
	}

	dir, err := scratchDir(opts, "kedrogen-zip-*")
	if err != nil {
		return "", "", err
	}

	if err := extractArchive(archive, dir, opts.Password); err != nil {
		return "", dir, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", dir, fmt.Errorf("reading extracted archive: %w", err)
	}
	if len(entries) != 1 || !entries[0].IsDir() {
		return "", dir, fmt.Errorf("archive must contain exactly one top-level directory")
	}

	return filepath.Join(dir, entries[0].Name()), dir, nil
}

// downloadArchive fetches a remote zip into a temporary file.
func downloadArchive(ctx context.Context, url string, opts Options) (string, func(), error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", nil, fmt.Errorf("creating download request: %w", err)
	}
	req.Header.Set("User-Agent", "kedrogen")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	f, err := os.CreateTemp("", "kedrogen-*.zip")
	if err != nil {
		return "", nil, fmt.Errorf("creating download file: %w", err)
	}

	opts.Log.Debug("downloading %s", url)
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", nil, fmt.Errorf("writing download: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", nil, fmt.Errorf("closing download: %w", err)
	}

	path := f.Name()
	return path, func() { os.Remove(path) }, nil
}

// extractArchive unpacks a zip file into destDir, applying the password to
// encrypted entries.
func extractArchive(archive, destDir, password string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.IsEncrypted() {
			if password == "" {
				return fmt.Errorf("archive entry %s is password-protected: supply --password", f.Name)
			}
			f.SetPassword(password)
		}
		if err := extractEntry(f, destDir); err != nil {
			return err
		}
	}
	return nil
}

// extractEntry writes one archive entry under destDir, rejecting paths that
// escape it.
func extractEntry(f *zip.File, destDir string) error {
	name := filepath.FromSlash(f.Name)
	target := filepath.Join(destDir, name)
	if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return fmt.Errorf("archive entry %s escapes the extraction directory", f.Name)
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", f.Name, err)
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening archive entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	mode := f.FileInfo().Mode().Perm()
	if mode == 0 {
		mode = 0644
	}
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("extracting %s: %w", f.Name, err)
	}
	return nil
}
