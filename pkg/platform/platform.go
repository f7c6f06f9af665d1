// Package platform identifies the host operating system and architecture
// using the names understood by the JDK download service.
package platform

import (
	"path/filepath"
	"runtime"
)

// OS is a target operating system identifier.
type OS string

const (
	// OSLinux represents Linux.
	OSLinux OS = "linux"
	// OSMac represents macOS.
	OSMac OS = "mac"
	// OSWindows represents Microsoft Windows.
	OSWindows OS = "windows"
	// OSUnknown is used when the host system has no known mapping.
	OSUnknown OS = ""
)

// Arch is a target CPU architecture identifier.
type Arch string

const (
	// ArchX64 represents x86_64/AMD64.
	ArchX64 Arch = "x64"
	// ArchArm64 represents AArch64/ARM64.
	ArchArm64 Arch = "aarch64"
	// ArchX32 represents 32-bit x86.
	ArchX32 Arch = "x32"
	// ArchArm represents 32-bit ARM.
	ArchArm Arch = "arm"
	// ArchUnknown is used when the host architecture has no known mapping.
	ArchUnknown Arch = ""
)

// Descriptor describes the host platform. It is computed once at startup
// and passed along explicitly; OS or Arch may be empty when the host has
// no mapping, in which case no runtime download can be attempted.
// Immutable
type Descriptor struct {
	OS   OS
	Arch Arch

	// LibC is the C library identifier the download service expects
	// for this operating system.
	LibC string
	// ArchiveExt is the archive format served for this operating system,
	// without a leading dot.
	ArchiveExt string
}

// Detect builds the Descriptor for the running process.
func Detect() Descriptor {
	return describe(runtime.GOOS, runtime.GOARCH)
}

func describe(goos, goarch string) Descriptor {
	d := Descriptor{
		OS:   mapOS(goos),
		Arch: mapArch(goarch),
	}

	switch d.OS {
	case OSLinux:
		d.LibC = "glibc"
		d.ArchiveExt = "tar.gz"
	case OSMac:
		d.LibC = "libc"
		d.ArchiveExt = "tar.gz"
	case OSWindows:
		d.LibC = "c_std_lib"
		d.ArchiveExt = "zip"
	}

	return d
}

func mapOS(goos string) OS {
	switch goos {
	case "linux":
		return OSLinux
	case "darwin":
		return OSMac
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

func mapArch(goarch string) Arch {
	switch goarch {
	case "amd64":
		return ArchX64
	case "arm64":
		return ArchArm64
	case "386":
		return ArchX32
	case "arm":
		return ArchArm
	default:
		return ArchUnknown
	}
}

// BuildID returns a short host identifier such as "linux-x64".
// Unmapped dimensions are reported as "unknown".
func (d Descriptor) BuildID() string {
	os := string(d.OS)
	if os == "" {
		os = "unknown"
	}
	arch := string(d.Arch)
	if arch == "" {
		arch = "unknown"
	}
	return os + "-" + arch
}

// RuntimeRoot returns the actual runtime root inside an unpacked JDK
// directory. macOS bundles place it under an extra fixed subpath.
func (d Descriptor) RuntimeRoot(dir string) string {
	if d.OS == OSMac {
		return filepath.Join(dir, "Contents", "Home")
	}
	return dir
}

// String returns the string representation of the OS.
func (o OS) String() string {
	return string(o)
}

// String returns the string representation of the Arch.
func (a Arch) String() string {
	return string(a)
}
