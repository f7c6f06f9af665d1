package remote

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"jeka/pkg/cache"
	"jeka/pkg/display"
	"jeka/pkg/props"
)

// DirNotFoundError reports a local path reference that does not point at
// an existing directory.
type DirNotFoundError struct {
	// Path is the reference as given on the command line.
	Path string
	// Resolved is its absolute form.
	Resolved string
}

func (e *DirNotFoundError) Error() string {
	if e.Resolved != e.Path {
		return fmt.Sprintf("base directory %s does not exist (from %s)", e.Resolved, e.Path)
	}
	return fmt.Sprintf("base directory %s does not exist", e.Path)
}

// Resolver maps invocation references to base directories.
type Resolver struct {
	global      *props.Store
	gitCacheDir string
	cloner      Cloner
	disp        display.Display
}

// NewResolver creates a Resolver using the global properties for alias
// declarations and gitCacheDir for cached checkouts.
func NewResolver(global *props.Store, gitCacheDir string, disp display.Display) *Resolver {
	return &Resolver{
		global:      global,
		gitCacheDir: gitCacheDir,
		cloner:      ExecCloner{},
		disp:        disp,
	}
}

// BaseDir resolves token to the directory the tool should run in. Alias
// expansion happens first, then classification; local paths must exist,
// repository references are cloned into the cache or reused from it.
func (r *Resolver) BaseDir(ctx context.Context, token string, forceClean bool) (string, error) {
	expanded, err := ExpandAlias(token, r.global)
	if err != nil {
		return "", err
	}

	ref := Classify(expanded)
	if ref.Kind == Local {
		return r.localDir(ref.Path)
	}
	return r.checkout(ctx, ref, forceClean)
}

func (r *Resolver) localDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", &DirNotFoundError{Path: path, Resolved: abs}
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &DirNotFoundError{Path: path, Resolved: abs}
	}
	return canonical, nil
}

func (r *Resolver) checkout(ctx context.Context, ref Reference, forceClean bool) (string, error) {
	target := filepath.Join(r.gitCacheDir, CacheKey(ref.URL))

	if forceClean {
		if err := os.RemoveAll(target); err != nil {
			return "", fmt.Errorf("failed to clean cached checkout %s: %w", target, err)
		}
	}

	cloned := false
	err := cache.Ensure(target, func(stage string) error {
		cloned = true
		task := r.disp.StartTask("clone")
		defer task.Done()
		task.SetStage("Clone", ref.URL)
		slog.Info("Cloning repository", "url", ref.URL, "rev", ref.Rev, "target", target)
		return r.cloner.Clone(ctx, ref.URL, ref.Rev, stage)
	})
	if err != nil {
		return "", err
	}

	if !cloned {
		// A cached checkout is reused as-is and never refreshed from the
		// remote; re-cloning requires the clean flag or removing the entry.
		r.disp.Log(fmt.Sprintf("Using cached checkout %s", target))
	}
	return target, nil
}
