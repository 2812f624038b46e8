// Package manifest loads a template's cookiecutter.json variable manifest.
// Only the key set and its declaration order matter to context reconciliation;
// declared default values are carried along but consumed by the external
// renderer, not by this tool. The manifest shape is validated against an
// embedded JSON Schema.
package manifest
