// Package home locates the user-scope files and cache tree of the launcher.
package home

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// CacheDirEnv relocates the whole cache tree when set.
const CacheDirEnv = "JEKA_CACHE_DIR"

// Dirs holds the resolved user-scope locations.
// Immutable
type Dirs struct {
	// UserHome is the host user's home directory.
	UserHome string
	// Root is the launcher's own directory under the user home.
	Root string
	// Cache is the root of the artifact cache tree.
	Cache string
}

// Detect resolves the launcher directories for the current user.
// The cache root honors the CacheDirEnv override.
func Detect() (Dirs, error) {
	userHome := xdg.Home
	if userHome == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return Dirs{}, fmt.Errorf("failed to locate the user home directory: %w", err)
		}
		userHome = h
	}

	root := filepath.Join(userHome, ".jeka")

	cache := os.Getenv(CacheDirEnv)
	if cache == "" {
		cache = filepath.Join(root, "cache")
	}

	return Dirs{
		UserHome: userHome,
		Root:     root,
		Cache:    cache,
	}, nil
}

// GlobalPropsFile returns the path of the user-scope properties file.
func (d Dirs) GlobalPropsFile() string {
	return filepath.Join(d.Root, "global.properties")
}

// GitCache returns the directory holding cached repository checkouts.
func (d Dirs) GitCache() string {
	return filepath.Join(d.Cache, "git")
}

// JdkCacheRoot returns the directory holding all cached runtimes.
func (d Dirs) JdkCacheRoot() string {
	return filepath.Join(d.Cache, "jdks")
}

// DistribCacheRoot returns the directory holding all cached distributions.
func (d Dirs) DistribCacheRoot() string {
	return filepath.Join(d.Cache, "distributions")
}
