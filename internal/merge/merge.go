package merge

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kedrogen-labs/kedrogen/internal/logging"
)

// EntryStatus is the outcome of one top-level entry's merge.
type EntryStatus int

const (
	// StatusMoved means the entry now lives at the destination.
	StatusMoved EntryStatus = iota
	// StatusSkipped means the operator declined to overwrite an existing
	// destination entry; the destination is untouched.
	StatusSkipped
	// StatusFailed means the entry could not be moved for a reason other
	// than a declined overwrite.
	StatusFailed
)

// EntryResult reports what happened to one top-level entry.
type EntryResult struct {
	Name   string
	Status EntryStatus
	Err    error
}

// Result reports the full merge outcome.
type Result struct {
	Entries []EntryResult
	// CleanupErr is set when the emptied source tree could not be removed.
	// Non-fatal: the project has already been materialized.
	CleanupErr error
}

// Failed returns the entries that ended in StatusFailed.
func (r *Result) Failed() []EntryResult {
	var failed []EntryResult
	for _, e := range r.Entries {
		if e.Status == StatusFailed {
			failed = append(failed, e)
		}
	}
	return failed
}

// Skipped returns the entries the operator declined to overwrite.
func (r *Result) Skipped() []EntryResult {
	var skipped []EntryResult
	for _, e := range r.Entries {
		if e.Status == StatusSkipped {
			skipped = append(skipped, e)
		}
	}
	return skipped
}

// SourceDirError reports a rendered directory that cannot be merged from.
type SourceDirError struct {
	Path string
}

func (e *SourceDirError) Error() string {
	return fmt.Sprintf("source directory %s does not exist or is not a directory", e.Path)
}

// Merger moves rendered output into a destination directory.
type Merger struct {
	Confirm Confirmer
	Log     *logging.Logger
}

// Merge moves every top-level entry of srcDir into destDir. Colliding
// entries need an explicit overwrite confirmation; declined entries are
// skipped and the merge continues. Failures are recorded per entry, never
// swallowed, and never abort the remaining entries. After all entries are
// processed the (expected-to-be-empty) srcDir tree is removed best-effort.
func (m *Merger) Merge(srcDir, destDir string) (*Result, error) {
	log := m.Log
	if log == nil {
		log = logging.Nop()
	}

	info, err := os.Stat(srcDir)
	if err != nil || !info.IsDir() {
		return nil, &SourceDirError{Path: srcDir}
	}

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, fmt.Errorf("reading source directory %s: %w", srcDir, err)
	}

	result := &Result{}
	for _, entry := range entries {
		name := entry.Name()
		src := filepath.Join(srcDir, name)
		dest := filepath.Join(destDir, name)

		outcome := m.mergeEntry(src, dest, log)
		outcome.Name = name
		result.Entries = append(result.Entries, outcome)
	}

	if err := os.RemoveAll(srcDir); err != nil {
		result.CleanupErr = fmt.Errorf("removing rendered directory %s: %w", srcDir, err)
	} else {
		log.Debug("removed rendered directory %s", srcDir)
	}

	return result, nil
}

// mergeEntry handles one top-level entry: confirm-and-replace on collision,
// plain move otherwise.
func (m *Merger) mergeEntry(src, dest string, log *logging.Logger) EntryResult {
	if _, err := os.Lstat(dest); err == nil {
		overwrite, confirmErr := m.Confirm.Confirm(fmt.Sprintf("'%s' already exists. Overwrite?", dest))
		if confirmErr != nil {
			return EntryResult{Status: StatusFailed, Err: fmt.Errorf("confirming overwrite of %s: %w", dest, confirmErr)}
		}
		if !overwrite {
			log.Warn("skipping: '%s'", dest)
			return EntryResult{Status: StatusSkipped}
		}
		if err := os.RemoveAll(dest); err != nil {
			return EntryResult{Status: StatusFailed, Err: fmt.Errorf("removing existing %s: %w", dest, err)}
		}
	}

	if err := move(src, dest); err != nil {
		return EntryResult{Status: StatusFailed, Err: err}
	}
	log.Debug("moved: '%s'", filepath.Base(src))
	return EntryResult{Status: StatusMoved}
}

// move renames src to dest, falling back to copy+remove when the rename
// crosses filesystems.
func move(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}
	if err := copyTree(src, dest); err != nil {
		return fmt.Errorf("moving %s: %w", src, err)
	}
	if err := os.RemoveAll(src); err != nil {
		return fmt.Errorf("removing %s after copy: %w", src, err)
	}
	return nil
}

// copyTree recursively copies a file or directory.
func copyTree(src, dest string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return err
	}

	switch {
	case info.IsDir():
		if err := os.MkdirAll(dest, info.Mode().Perm()); err != nil {
			return err
		}
		entries, err := os.ReadDir(src)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := copyTree(filepath.Join(src, entry.Name()), filepath.Join(dest, entry.Name())); err != nil {
				return err
			}
		}
		return nil
	case info.Mode()&os.ModeSymlink != 0:
		target, err := os.Readlink(src)
		if err != nil {
			return err
		}
		return os.Symlink(target, dest)
	default:
		return copyFile(src, dest, info.Mode().Perm())
	}
}

func copyFile(src, dest string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
