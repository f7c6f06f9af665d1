// Package archive unpacks downloaded runtime and distribution archives.
package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// SupportedExtensions returns the archive extensions Extract understands.
func SupportedExtensions() []string {
	return []string{".zip", ".tar", ".tar.gz", ".tgz", ".tar.zst"}
}

// IsSupported reports whether the filename has a supported archive extension.
func IsSupported(filename string) bool {
	for _, ext := range SupportedExtensions() {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}

// Extract extracts the contents of the archive at src into the directory
// dest. It supports .zip, .tar, .tar.gz, .tgz, and .tar.zst formats.
func Extract(src string, dest string) error {
	if strings.HasSuffix(src, ".zip") {
		return extractZip(src, dest)
	}

	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer f.Close()

	var r io.Reader = f

	if strings.HasSuffix(src, ".tar.gz") || strings.HasSuffix(src, ".tgz") {
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		r = gzr
	} else if strings.HasSuffix(src, ".tar.zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return fmt.Errorf("failed to create zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
	} else if !strings.HasSuffix(src, ".tar") {
		return fmt.Errorf("unsupported archive format: %s", src)
	}

	return extractTar(r, dest)
}

func extractZip(src, dest string) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		return fmt.Errorf("failed to open zip archive: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		var link string
		if f.FileInfo().Mode()&os.ModeSymlink != 0 {
			rc, err := f.Open()
			if err != nil {
				return fmt.Errorf("failed to open archive entry %s: %w", f.Name, err)
			}
			b, err := io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return fmt.Errorf("failed to read symlink entry %s: %w", f.Name, err)
			}
			link = string(b)
		}

		err := extractEntry(dest, f.Name, f.FileInfo(), link, func() (io.ReadCloser, error) {
			return f.Open()
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func extractTar(r io.Reader, dest string) error {
	tr := tar.NewReader(r)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read tar header: %w", err)
		}

		err = extractEntry(dest, header.Name, header.FileInfo(), header.Linkname, func() (io.ReadCloser, error) {
			return io.NopCloser(tr), nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// extractEntry writes a single directory, symlink, or regular file entry.
// opener returns a reader for regular-file content.
func extractEntry(dest, name string, info os.FileInfo, link string, opener func() (io.ReadCloser, error)) error {
	// Secure path calculation (Zip Slip protection)
	target := filepath.Join(dest, name)
	if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
		return fmt.Errorf("illegal file path in archive: %s", name)
	}

	if info.IsDir() {
		if err := os.MkdirAll(target, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", target, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory for %s: %w", target, err)
	}

	// JDK archives carry relative symlinks (e.g. lib aliases); recreate
	// them instead of copying content.
	if info.Mode()&os.ModeSymlink != 0 {
		os.Remove(target)
		if err := os.Symlink(link, target); err != nil {
			return fmt.Errorf("failed to create symlink %s: %w", target, err)
		}
		return nil
	}

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", target, err)
	}
	defer f.Close()

	rc, err := opener()
	if err != nil {
		return fmt.Errorf("failed to open archive entry %s: %w", name, err)
	}
	// For tar entries rc wraps the shared stream and Close is a no-op;
	// zip entries hold a real handle that must be closed.
	defer rc.Close()

	if _, err := io.Copy(f, rc); err != nil {
		return fmt.Errorf("failed to write file %s: %w", target, err)
	}
	return nil
}
