package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"jeka/pkg/display"

	"github.com/dustin/go-humanize"
)

// Immutable
type httpHandler struct {
	client    *http.Client
	userAgent string
}

func NewHTTPHandler(userAgent string) SchemeHandler {
	return &httpHandler{
		client: &http.Client{
			Timeout: 0, // Cancellation comes from the context
		},
		userAgent: userAgent,
	}
}

func (h *httpHandler) Schemes() []string {
	return []string{"http", "https"}
}

func (h *httpHandler) Download(ctx context.Context, uri string, w io.Writer, task display.Task) error {
	req, err := http.NewRequestWithContext(ctx, "GET", uri, nil)
	if err != nil {
		return &Error{URL: uri, Err: err}
	}
	if h.userAgent != "" {
		req.Header.Set("User-Agent", h.userAgent)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return &Error{URL: uri, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &Error{URL: uri, Status: resp.StatusCode}
	}

	pw := &progressWriter{
		task:  task,
		total: resp.ContentLength,
		start: time.Now(),
	}

	if _, err := io.Copy(io.MultiWriter(w, pw), resp.Body); err != nil {
		return &Error{URL: uri, Err: err}
	}
	return nil
}

// Mutable
type progressWriter struct {
	task    display.Task
	total   int64
	written int64
	start   time.Time
}

func (pw *progressWriter) Write(p []byte) (int, error) {
	n := len(p)
	pw.written += int64(n)

	if pw.total <= 0 {
		pw.task.Progress(0, fmt.Sprintf("%s downloaded", humanize.Bytes(uint64(pw.written))))
		return n, nil
	}

	percent := int(pw.written * 100 / pw.total)
	msg := fmt.Sprintf("%s / %s", humanize.Bytes(uint64(pw.written)), humanize.Bytes(uint64(pw.total)))
	// The rate needs a little elapsed time before it means anything.
	if elapsed := time.Since(pw.start).Seconds(); elapsed > 0.5 {
		msg += fmt.Sprintf(" (%s/s)", humanize.Bytes(uint64(float64(pw.written)/elapsed)))
	}
	pw.task.Progress(percent, msg)
	return n, nil
}
