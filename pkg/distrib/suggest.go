package distrib

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jeka/pkg/display"
)

// maxSuggested caps how many versions an error message lists.
const maxSuggested = 10

// availableVersions fetches the repository's index page for the core
// artifact and returns the most recent version directories. Best effort:
// any failure yields nil and the caller falls back to a plain error.
func (r *Resolver) availableVersions(ctx context.Context, repo string) []string {
	uri := strings.TrimRight(repo, "/") + "/dev/jeka/jeka-core/"

	var buf bytes.Buffer
	if err := r.Downloader.Download(ctx, uri, &buf, display.NopTask()); err != nil {
		slog.Debug("Version index not available", "url", uri, "err", err)
		return nil
	}
	return parseVersionIndex(&buf)
}

// parseVersionIndex extracts version directory names from a Maven-layout
// HTML index page. Links may be relative ("0.11.24/") or absolute.
func parseVersionIndex(rd io.Reader) []string {
	doc, err := goquery.NewDocumentFromReader(rd)
	if err != nil {
		return nil
	}

	var versions []string
	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		href = strings.TrimSuffix(href, "/")
		if i := strings.LastIndex(href, "/"); i >= 0 {
			href = href[i+1:]
		}
		if href == "" || href[0] < '0' || href[0] > '9' {
			return
		}
		versions = append(versions, href)
	})

	// Maven indexes list versions oldest first; keep the tail.
	if len(versions) > maxSuggested {
		versions = versions[len(versions)-maxSuggested:]
	}
	return versions
}
