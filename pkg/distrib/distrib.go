// Package distrib resolves the tool distribution to run and assembles the
// classpath for launching it. Versioned distributions are cached per
// version and downloaded from a Maven-layout repository on a miss.
package distrib

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"jeka/pkg/cache"
	"jeka/pkg/display"
	"jeka/pkg/downloader"
	"jeka/pkg/props"
)

const (
	// VersionProp selects the distribution version to run.
	VersionProp = "jeka.version"
	// LocationProp points at an unpacked distribution directory, taking
	// precedence over version resolution entirely.
	LocationProp = "jeka.distrib.location"
	// RepoProp overrides the repository downloads come from.
	RepoProp = "jeka.distrib.repo"
	// DefaultRepo is the public repository used when none is configured.
	DefaultRepo = "https://repo.maven.apache.org/maven2"

	// CoreJarName is the tool's executable artifact inside a distribution.
	CoreJarName = "dev.jeka.jeka-core.jar"
	// BootDirName is the project-local extension directory whose jars are
	// prepended to the classpath.
	BootDirName = "jeka-boot"
)

// NotFoundError reports that no distribution version is configured and no
// co-located artifact exists next to the launcher.
type NotFoundError struct {
	// LauncherDir is the directory holding the running launcher binary.
	LauncherDir string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no distribution found: set %s or %s in a properties file, or place %s next to the launcher in %s",
		VersionProp, LocationProp, CoreJarName, e.LauncherDir)
}

// ArtifactMissingError reports a resolved distribution root without the
// expected artifact, i.e. a corrupt or mis-packaged entry. Entries are
// never re-downloaded; the directory must be removed to force a fresh
// install.
type ArtifactMissingError struct {
	Root string
}

func (e *ArtifactMissingError) Error() string {
	return fmt.Sprintf("distribution at %s is missing %s; remove the directory and retry", e.Root, CoreJarName)
}

// Resolver locates the distribution and assembles its classpath.
// Immutable
type Resolver struct {
	Props      *props.Resolver
	CacheDir   string
	Downloader downloader.Downloader
	Disp       display.Display

	// LauncherPath is the running launcher executable, used to find a
	// co-located artifact when no version is configured.
	LauncherPath string
}

// Classpath returns the ordered classpath entries for launching the tool
// from baseDir: the extension directory glob when baseDir has one, then
// the distribution's core artifact.
func (r *Resolver) Classpath(ctx context.Context, baseDir string) ([]string, error) {
	root, err := r.distribRoot(ctx)
	if err != nil {
		return nil, err
	}

	jar := filepath.Join(root, CoreJarName)
	if _, err := os.Stat(jar); err != nil {
		return nil, &ArtifactMissingError{Root: root}
	}

	var entries []string
	boot := filepath.Join(baseDir, BootDirName)
	if info, err := os.Stat(boot); err == nil && info.IsDir() {
		entries = append(entries, filepath.Join(boot, "*"))
	}
	return append(entries, jar), nil
}

// distribRoot resolves the directory expected to hold the artifact. An
// explicit location wins; without a configured version the launcher's own
// directory is tried; otherwise the versioned cache entry is used,
// installed on first need.
func (r *Resolver) distribRoot(ctx context.Context) (string, error) {
	if loc := r.Props.Get(LocationProp); loc != "" {
		slog.Debug("Using explicit distribution location", "path", loc)
		return loc, nil
	}

	version := strings.Join(strings.Fields(r.Props.Get(VersionProp)), "")
	if version == "" {
		dir := filepath.Dir(r.LauncherPath)
		if _, err := os.Stat(filepath.Join(dir, CoreJarName)); err != nil {
			return "", &NotFoundError{LauncherDir: dir}
		}
		slog.Debug("Using distribution co-located with launcher", "dir", dir)
		return dir, nil
	}

	target := filepath.Join(r.CacheDir, version)
	installed := false
	err := cache.Ensure(target, func(stage string) error {
		installed = true
		return r.install(ctx, stage, version)
	})
	if err != nil {
		return "", err
	}
	if installed {
		r.Disp.Print("Installed distribution " + version)
	}
	return target, nil
}
