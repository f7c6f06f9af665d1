// Package jdk resolves the Java runtime used to launch the tool. A
// configured major version is resolved against explicit overrides first
// and a cached managed installation last, downloading the runtime on a
// cache miss.
package jdk

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"jeka/pkg/archive"
	"jeka/pkg/cache"
	"jeka/pkg/display"
	"jeka/pkg/downloader"
	"jeka/pkg/platform"
	"jeka/pkg/props"
)

const (
	// VersionProp selects the runtime major version, e.g. "21".
	VersionProp = "jeka.java.version"
	// DistribProp selects the runtime distribution family.
	DistribProp = "jeka.java.distrib"
	// DefaultDistrib is the distribution used when none is configured.
	DefaultDistrib = "temurin"
	// HomeEnv short-circuits resolution with an explicit installation path.
	HomeEnv = "JEKA_JDK_HOME"

	// versionPathPrefix prefixes per-version installation path properties,
	// e.g. "jeka.jdk.21".
	versionPathPrefix = "jeka.jdk."
)

// UnsupportedPlatformError reports that a runtime download is needed but
// the host platform has no mapping for the download service.
type UnsupportedPlatformError struct {
	// Dimension names the unmapped part, "operating system" or "architecture".
	Dimension string
	// Version is the requested runtime version.
	Version string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("cannot download jdk %s: unsupported host %s; set %s%s to an existing installation",
		e.Version, e.Dimension, versionPathPrefix, e.Version)
}

// Resolver locates or installs the Java runtime for one invocation.
// Immutable
type Resolver struct {
	Props      *props.Resolver
	Platform   platform.Descriptor
	CacheDir   string
	Downloader downloader.Downloader
	Disp       display.Display

	// DiscoBaseURL overrides the download service endpoint; empty means
	// DefaultDiscoBaseURL.
	DiscoBaseURL string
}

// JavaHome returns the home directory of the runtime to launch with, or
// "" when no version is configured and the ambient runtime should be used.
//
// Overrides are honored in order: the HomeEnv environment variable, then
// a per-version path property. Otherwise the managed cache entry for the
// configured distribution and version is used, installed on first need.
func (r *Resolver) JavaHome(ctx context.Context) (string, error) {
	version := strings.Join(strings.Fields(r.Props.Get(VersionProp)), "")
	if version == "" {
		return "", nil
	}

	if home := os.Getenv(HomeEnv); home != "" {
		slog.Debug("Using jdk from environment", "env", HomeEnv, "path", home)
		return home, nil
	}

	if path := r.Props.Get(versionPathPrefix + version); path != "" {
		slog.Debug("Using pinned jdk path", "version", version, "path", path)
		return path, nil
	}

	distrib := r.Props.GetDefault(DistribProp, DefaultDistrib)
	target := filepath.Join(r.CacheDir, distrib+"-"+version)

	if _, err := os.Stat(target); err == nil {
		slog.Debug("Using cached jdk", "path", target)
		return r.Platform.RuntimeRoot(target), nil
	}

	if r.Platform.OS == platform.OSUnknown {
		return "", &UnsupportedPlatformError{Dimension: "operating system", Version: version}
	}
	if r.Platform.Arch == platform.ArchUnknown {
		return "", &UnsupportedPlatformError{Dimension: "architecture", Version: version}
	}

	installed := false
	err := cache.Ensure(target, func(stage string) error {
		installed = true
		return r.install(ctx, stage, distrib, version)
	})
	if err != nil {
		return "", err
	}
	if installed {
		r.Disp.Print(fmt.Sprintf("Installed jdk %s %s", distrib, version))
	}
	return r.Platform.RuntimeRoot(target), nil
}

// install downloads and unpacks one runtime build into the staging
// directory.
func (r *Resolver) install(ctx context.Context, stage, distrib, version string) error {
	base := r.DiscoBaseURL
	if base == "" {
		base = DefaultDiscoBaseURL
	}
	uri := discoURL(base, r.Platform, distrib, version)

	task := r.Disp.StartTask(fmt.Sprintf("jdk %s %s", distrib, version))
	defer task.Done()

	task.SetStage("Download", uri)
	slog.Info("Downloading jdk", "distrib", distrib, "version", version, "url", uri)

	tmp, err := os.CreateTemp("", "jeka-jdk-*."+r.Platform.ArchiveExt)
	if err != nil {
		return fmt.Errorf("failed to create download file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := r.Downloader.Download(ctx, uri, tmp, task); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to download jdk %s %s (%s%s can point to an existing installation): %w",
			distrib, version, versionPathPrefix, version, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to finish download: %w", err)
	}

	task.SetStage("Extract", stage)
	if err := archive.Extract(tmp.Name(), stage); err != nil {
		return fmt.Errorf("failed to unpack jdk archive: %w", err)
	}
	return archive.Flatten(stage)
}
