package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// resetGenerateFlags restores the package-level flag state between tests.
func resetGenerateFlags(t *testing.T) {
	t.Helper()
	orig := []bool{generateVerbose, generateQuiet, generateVersion}
	t.Cleanup(func() {
		generateVerbose, generateQuiet, generateVersion = orig[0], orig[1], orig[2]
	})
}

func testCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(""))
	return cmd, &out, &errOut
}

func TestGenerateRejectsVerboseAndQuietTogether(t *testing.T) {
	resetGenerateFlags(t)
	generateVerbose = true
	generateQuiet = true

	cmd, out, errOut := testCommand()
	err := runGenerate(cmd, []string{"gh:kedro-org/kedro-starters"})
	if err == nil {
		t.Fatal("expected error for --verbose with --quiet")
	}
	if !strings.Contains(err.Error(), "--verbose") || !strings.Contains(err.Error(), "--quiet") {
		t.Errorf("error message %q does not name the conflicting flags", err)
	}
	// The conflict is rejected before any side effect or output.
	if out.Len() != 0 || errOut.Len() != 0 {
		t.Errorf("unexpected output: stdout=%q stderr=%q", out.String(), errOut.String())
	}
}

func TestGenerateVersionFlagShortCircuits(t *testing.T) {
	resetGenerateFlags(t)
	generateVersion = true
	// The conflict below would normally be fatal; the eager version flag
	// must win before validation runs.
	generateVerbose = true
	generateQuiet = true

	buildVersion = "1.2.3"
	cmd, out, _ := testCommand()
	if err := runGenerate(cmd, nil); err != nil {
		t.Fatalf("runGenerate() error: %v", err)
	}
	if !strings.Contains(out.String(), "1.2.3") {
		t.Errorf("version output = %q", out.String())
	}
}

func TestGenerateRequiresTemplateArgument(t *testing.T) {
	resetGenerateFlags(t)

	cmd, _, _ := testCommand()
	if err := runGenerate(cmd, nil); err == nil {
		t.Fatal("expected error when template argument is missing")
	}
}
