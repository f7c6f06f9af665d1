package remote

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Cloner fetches a source repository into a directory.
type Cloner interface {
	Clone(ctx context.Context, url, rev, dest string) error
}

// CloneError reports a failed clone. Output carries the git command's
// combined output verbatim; the operation is never retried.
type CloneError struct {
	URL    string
	Output string
	Err    error
}

func (e *CloneError) Error() string {
	msg := fmt.Sprintf("clone of %s failed: %v", e.URL, e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *CloneError) Unwrap() error {
	return e.Err
}

// ExecCloner shells out to the git binary on PATH.
type ExecCloner struct{}

// Clone performs a shallow clone of url at rev into dest. dest must not
// exist or be an empty directory.
func (ExecCloner) Clone(ctx context.Context, url, rev, dest string) error {
	args := []string{"clone", "--quiet", "-c", "advice.detachedHead=false", "--depth", "1"}
	if rev != "" {
		args = append(args, "--branch", rev)
	}
	args = append(args, "--", url, dest)

	cmd := exec.CommandContext(ctx, "git", args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return &CloneError{URL: url, Output: string(out), Err: err}
	}
	return nil
}
