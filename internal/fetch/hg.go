package fetch

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// cloneMercurial clones a mercurial template repository by shelling out to
// the hg client. There is no maintained Go mercurial implementation;
// cookiecutter itself shells out the same way.
func cloneMercurial(ctx context.Context, url string, opts Options) (string, error) {
	hg, err := exec.LookPath("hg")
	if err != nil {
		return "", fmt.Errorf("mercurial sources require the hg client: %w", err)
	}

	dir, err := scratchDir(opts, "kedrogen-hg-*")
	if err != nil {
		return "", err
	}

	args := []string{"clone", url, dir}
	if opts.Checkout != "" {
		args = append(args, "--updaterev", opts.Checkout)
	}

	opts.Log.Debug("cloning %s", url)
	cmd := exec.CommandContext(ctx, hg, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return dir, fmt.Errorf("hg clone: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return dir, nil
}
