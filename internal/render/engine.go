package render

import (
	"context"
	"fmt"

	"github.com/kedrogen-labs/kedrogen/internal/compose"
)

// Engine renders a template directory into a project tree under outputDir,
// returning the path of the generated project root.
type Engine interface {
	Render(ctx context.Context, templateDir string, vars *compose.Context, outputDir string) (string, error)
}

// RenderError reports a failed render run.
type RenderError struct {
	TemplateDir string
	Output      string
	Err         error
}

func (e *RenderError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("rendering template %s: %v\n%s", e.TemplateDir, e.Err, e.Output)
	}
	return fmt.Sprintf("rendering template %s: %v", e.TemplateDir, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
