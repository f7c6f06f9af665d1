package platform

import (
	"path/filepath"
	"testing"
)

func TestDescribe(t *testing.T) {
	cases := []struct {
		goos, goarch string
		os           OS
		arch         Arch
		libc         string
		ext          string
	}{
		{"linux", "amd64", OSLinux, ArchX64, "glibc", "tar.gz"},
		{"linux", "arm64", OSLinux, ArchArm64, "glibc", "tar.gz"},
		{"darwin", "arm64", OSMac, ArchArm64, "libc", "tar.gz"},
		{"windows", "amd64", OSWindows, ArchX64, "c_std_lib", "zip"},
		{"linux", "386", OSLinux, ArchX32, "glibc", "tar.gz"},
		{"freebsd", "amd64", OSUnknown, ArchX64, "", ""},
		{"linux", "riscv64", OSLinux, ArchUnknown, "glibc", "tar.gz"},
	}

	for _, c := range cases {
		d := describe(c.goos, c.goarch)
		if d.OS != c.os || d.Arch != c.arch {
			t.Errorf("describe(%s, %s) = %s/%s, want %s/%s", c.goos, c.goarch, d.OS, d.Arch, c.os, c.arch)
		}
		if d.LibC != c.libc {
			t.Errorf("describe(%s, %s) libc = %q, want %q", c.goos, c.goarch, d.LibC, c.libc)
		}
		if d.ArchiveExt != c.ext {
			t.Errorf("describe(%s, %s) ext = %q, want %q", c.goos, c.goarch, d.ArchiveExt, c.ext)
		}
	}
}

func TestBuildID(t *testing.T) {
	if got := describe("linux", "amd64").BuildID(); got != "linux-x64" {
		t.Errorf("BuildID = %q, want linux-x64", got)
	}
	if got := describe("plan9", "amd64").BuildID(); got != "unknown-x64" {
		t.Errorf("BuildID = %q, want unknown-x64", got)
	}
}

func TestRuntimeRoot(t *testing.T) {
	dir := filepath.Join("cache", "temurin-21")

	if got := describe("linux", "amd64").RuntimeRoot(dir); got != dir {
		t.Errorf("linux RuntimeRoot = %q, want %q", got, dir)
	}

	want := filepath.Join(dir, "Contents", "Home")
	if got := describe("darwin", "arm64").RuntimeRoot(dir); got != want {
		t.Errorf("mac RuntimeRoot = %q, want %q", got, want)
	}
}
