// Package downloader retrieves remote artifacts for the launcher. It
// dispatches on URI scheme and reports progress through the display package.
package downloader

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"jeka/pkg/display"
)

// Downloader manages the retrieval of resources from various URIs.
type Downloader interface {
	// Download retrieves the resource at the specified URI and writes it
	// to w, reporting progress through task.
	Download(ctx context.Context, uri string, w io.Writer, task display.Task) error
}

// SchemeHandler handles a specific set of URI schemes.
type SchemeHandler interface {
	Download(ctx context.Context, uri string, w io.Writer, task display.Task) error
	// Schemes returns the URI schemes (e.g. ["http", "https"]) this
	// handler can process.
	Schemes() []string
}

// Error describes a failed download. Status is the HTTP status code for
// rejected requests and zero for transport-level failures.
type Error struct {
	URL    string
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("download of %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("download of %s failed: status %d", e.URL, e.Status)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Mutable
type manager struct {
	handlers map[string]SchemeHandler
}

// New creates a Downloader with the default scheme handlers. The
// userAgent string identifies the launcher to remote servers.
func New(userAgent string) Downloader {
	m := &manager{
		handlers: make(map[string]SchemeHandler),
	}
	m.Register(NewHTTPHandler(userAgent))
	return m
}

func (m *manager) Register(h SchemeHandler) {
	for _, scheme := range h.Schemes() {
		m.handlers[scheme] = h
	}
}

func (m *manager) Download(ctx context.Context, uri string, w io.Writer, task display.Task) error {
	u, err := url.Parse(uri)
	if err != nil {
		return fmt.Errorf("invalid uri: %w", err)
	}

	scheme := strings.ToLower(u.Scheme)
	handler, ok := m.handlers[scheme]
	if !ok {
		return fmt.Errorf("unsupported scheme: %s", scheme)
	}

	return handler.Download(ctx, uri, w, task)
}
