package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FileName is the manifest file expected at a template root.
const FileName = "cookiecutter.json"

// Schema is a template's declared variable set, in declaration order.
type Schema struct {
	// Path is the manifest file the schema was loaded from.
	Path string

	entries *orderedmap.OrderedMap[string, any]
}

// NotFoundError reports a template directory without a manifest file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found at: %s", FileName, e.Path)
}

// ParseError reports a manifest file whose content is not a well-formed
// JSON object.
type ParseError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s at %s: %v", FileName, e.Path, e.Err)
	}
	return fmt.Sprintf("invalid %s at %s: %s", FileName, e.Path, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads and validates the manifest at <templateDir>/cookiecutter.json.
// A missing file yields a NotFoundError; malformed JSON or a non-object root
// yields a ParseError.
func Load(templateDir string) (*Schema, error) {
	path := filepath.Join(templateDir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if !result.Valid {
		var msgs []string
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			msgs = append(msgs, msg)
		}
		return nil, &ParseError{Path: path, Reason: strings.Join(msgs, "; ")}
	}

	entries := orderedmap.New[string, any]()
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &Schema{Path: path, entries: entries}, nil
}

// Keys returns the variable names in declaration order.
func (s *Schema) Keys() []string {
	keys := make([]string, 0, s.entries.Len())
	for pair := s.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Default returns the declared default value for a key, if any.
func (s *Schema) Default(key string) (any, bool) {
	return s.entries.Get(key)
}

// Len returns the number of declared variables.
func (s *Schema) Len() int {
	return s.entries.Len()
}
