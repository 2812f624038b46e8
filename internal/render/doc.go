// Package render defines the boundary to the external templating engine.
// The Engine interface consumes a template directory and a reconciled
// variable mapping and produces a rendered project tree; the production
// implementation shells out to the cookiecutter program. This tool never
// renders templates in-process.
package render
