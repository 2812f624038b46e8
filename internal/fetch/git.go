package fetch

import (
	"context"
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// cloneGit clones a git template repository into a scratch directory and
// optionally checks out the requested revision.
func cloneGit(ctx context.Context, url string, opts Options) (string, error) {
	dir, err := scratchDir(opts, "kedrogen-git-*")
	if err != nil {
		return "", err
	}

	opts.Log.Debug("cloning %s", url)
	repo, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL: url,
	})
	if err != nil {
		return dir, fmt.Errorf("git clone: %w", err)
	}

	if opts.Checkout != "" {
		if err := checkoutRevision(repo, opts.Checkout); err != nil {
			return dir, err
		}
	}

	return dir, nil
}

// checkoutRevision resolves a branch, tag, or commit and checks it out.
func checkoutRevision(repo *git.Repository, revision string) error {
	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return fmt.Errorf("resolving revision %q: %w", revision, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}

	if err := wt.Checkout(&git.CheckoutOptions{Hash: *hash}); err != nil {
		return fmt.Errorf("checking out %q: %w", revision, err)
	}
	return nil
}
