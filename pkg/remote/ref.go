// Package remote resolves invocation references — local paths, aliases,
// and source-control URLs — to the concrete base directory the tool runs
// in, cloning into the cache when needed.
package remote

import (
	"strings"
)

// Kind tags the two shapes an invocation reference can take.
type Kind int

const (
	// Local is a filesystem path.
	Local Kind = iota
	// Git is a source-control URL, optionally carrying a #rev suffix.
	Git
)

// Reference is a classified invocation reference. Classification happens
// once; the populated fields depend on Kind.
// Immutable
type Reference struct {
	Kind Kind

	// Path is the filesystem path as given (Local only).
	Path string
	// URL is the clone URL without the rev suffix (Git only).
	URL string
	// Rev is the branch or tag after '#', possibly empty (Git only).
	Rev string
}

// Classify decides whether raw names a repository or a local path. A
// reference is a repository iff it uses one of the recognized URL forms:
// https://, ssh://, git:// or the scp-like user@host: form.
func Classify(raw string) Reference {
	if !looksLikeRepo(raw) {
		return Reference{Kind: Local, Path: raw}
	}
	url, rev, _ := strings.Cut(raw, "#")
	return Reference{Kind: Git, URL: url, Rev: rev}
}

func looksLikeRepo(s string) bool {
	for _, prefix := range []string{"https://", "ssh://", "git://"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	// user@host:path
	at := strings.Index(s, "@")
	colon := strings.Index(s, ":")
	return at > 0 && colon > at && !strings.ContainsAny(s[:at], "/\\")
}

// CacheKey derives the checkout folder name for a clone URL: the scheme
// prefix is stripped and separators become underscores, so distinct URLs
// keep distinct, filesystem-safe names.
func CacheKey(url string) string {
	key := url
	for _, prefix := range []string{"https://", "ssh://", "git://"} {
		key = strings.TrimPrefix(key, prefix)
	}
	key = strings.TrimPrefix(key, "git@")
	key = strings.ReplaceAll(key, "/", "_")
	key = strings.ReplaceAll(key, ":", "_")
	return key
}
