// Package config manages user-level settings stored at ~/.kedrogen/config.yaml.
// It provides the shorthand abbreviation table used by source resolution and
// the scratch directory under which remote templates are cloned or extracted.
package config
