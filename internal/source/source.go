package source

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Kind identifies the accepted form of a template source string.
type Kind int

const (
	KindInvalid Kind = iota
	KindLocalDirectory
	KindGit
	KindMercurial
	KindFileURL
	KindZipArchive
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindLocalDirectory:
		return "local directory"
	case KindGit:
		return "git repository"
	case KindMercurial:
		return "mercurial repository"
	case KindFileURL:
		return "file URL"
	case KindZipArchive:
		return "zip archive"
	default:
		return "invalid"
	}
}

// Source is a classified template source. Immutable once resolved.
type Source struct {
	Kind Kind
	// Raw is the source string exactly as the user supplied it.
	Raw string
	// Location is the normalized, fetchable form: an absolute path for local
	// directories, the expanded URL for shorthands, and the clone/download URL
	// with any git+/hg+ transport prefix stripped for VCS sources.
	Location string
}

// InvalidSourceError reports a source string that matches none of the
// accepted forms.
type InvalidSourceError struct {
	Source string
}

func (e *InvalidSourceError) Error() string {
	return fmt.Sprintf("invalid template source %q: not a readable local directory, VCS URL, shorthand, or zip archive", e.Source)
}

var gitPrefixes = []string{"git+", "git@", "ssh://", "git://", "http://", "https://"}

var hgPrefixes = []string{"hg+"}

// archiveExtensions lists the recognized archive suffixes. Checked ahead of
// the generic http/https prefixes so that remote archives stay reachable.
var archiveExtensions = []string{".zip"}

// Resolve classifies raw and returns its normalized form. abbreviations maps
// shorthand prefixes (gh, gl, bb, ...) to URL patterns with a %s placeholder
// for the owner/repo remainder. Classification precedence: local directory,
// archive extension, git, mercurial, file URL.
func Resolve(raw string, abbreviations map[string]string) (*Source, error) {
	if dir, ok := localDirectory(raw); ok {
		return &Source{Kind: KindLocalDirectory, Raw: raw, Location: dir}, nil
	}

	if isArchive(raw) {
		return &Source{Kind: KindZipArchive, Raw: raw, Location: raw}, nil
	}

	if expanded, ok := expandAbbreviation(raw, abbreviations); ok {
		return classifyURL(raw, expanded)
	}

	if isGitURL(raw) {
		return &Source{Kind: KindGit, Raw: raw, Location: strings.TrimPrefix(raw, "git+")}, nil
	}

	if isMercurialURL(raw) {
		return &Source{Kind: KindMercurial, Raw: raw, Location: strings.TrimPrefix(raw, "hg+")}, nil
	}

	if u, err := url.Parse(raw); err == nil && u.Scheme == "file" {
		return &Source{Kind: KindFileURL, Raw: raw, Location: raw}, nil
	}

	return nil, &InvalidSourceError{Source: raw}
}

// localDirectory reports whether raw names an existing, readable directory,
// returning its absolute normalized path.
func localDirectory(raw string) (string, bool) {
	info, err := os.Stat(raw)
	if err != nil || !info.IsDir() {
		return "", false
	}
	// Readability probe: opening a directory checks read permission without
	// touching its contents.
	f, err := os.Open(raw)
	if err != nil {
		return "", false
	}
	f.Close()

	abs, err := filepath.Abs(raw)
	if err != nil {
		return "", false
	}
	return filepath.Clean(abs), true
}

// expandAbbreviation expands a "prefix:owner/repo" shorthand through the
// abbreviation table.
func expandAbbreviation(raw string, abbreviations map[string]string) (string, bool) {
	prefix, rest, ok := strings.Cut(raw, ":")
	if !ok {
		return "", false
	}
	pattern, ok := abbreviations[prefix]
	if !ok {
		return "", false
	}
	if strings.Contains(pattern, "%s") {
		return fmt.Sprintf(pattern, rest), true
	}
	return pattern, true
}

// classifyURL classifies an abbreviation-expanded URL. Expansions normally
// produce git URLs, but a user-configured abbreviation may point anywhere.
func classifyURL(raw, expanded string) (*Source, error) {
	switch {
	case isArchive(expanded):
		return &Source{Kind: KindZipArchive, Raw: raw, Location: expanded}, nil
	case isGitURL(expanded):
		return &Source{Kind: KindGit, Raw: raw, Location: strings.TrimPrefix(expanded, "git+")}, nil
	case isMercurialURL(expanded):
		return &Source{Kind: KindMercurial, Raw: raw, Location: strings.TrimPrefix(expanded, "hg+")}, nil
	default:
		return nil, &InvalidSourceError{Source: raw}
	}
}

func isGitURL(s string) bool {
	for _, p := range gitPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return strings.HasSuffix(s, ".git")
}

func isMercurialURL(s string) bool {
	for _, p := range hgPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func isArchive(s string) bool {
	lower := strings.ToLower(s)
	for _, ext := range archiveExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
