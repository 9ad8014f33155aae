// Package download retrieves remote files over HTTP and stores them on
// disk.
package download

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"
)

const (
	// DefaultTimeout bounds a single download request.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent identifies the client to remote servers.
	DefaultUserAgent = "datagrab/1.0"
)

// Error describes a failure to download a URL.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("download %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("download %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures a download.
type Options struct {
	// Timeout bounds the whole request. Zero means DefaultTimeout.
	Timeout time.Duration
	// UserAgent is sent as the User-Agent header when non-empty.
	UserAgent string
	// Headers are extra request headers.
	Headers map[string]string
	// Filename overrides the name derived from the URL path.
	Filename string
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// File downloads rawURL into dir and returns the path of the written
// file. The filename is the last segment of the URL path, ignoring any
// query string, unless opts.Filename overrides it. The directory is
// created if absent. Responses outside the 2xx range are reported as an
// *Error carrying the HTTP status.
func File(ctx context.Context, rawURL, dir string, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", &Error{URL: rawURL, Message: "invalid URL", Cause: err}
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", &Error{URL: rawURL, Message: "not an absolute http(s) URL"}
	}

	filename := opts.Filename
	if filename == "" {
		filename = path.Base(parsed.Path)
	}
	if filename == "" || filename == "." || filename == ".." || filename == "/" {
		return "", &Error{URL: rawURL, Message: "URL path has no filename"}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create download directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &Error{URL: rawURL, Message: "build request", Cause: err}
	}
	if opts.UserAgent != "" {
		req.Header.Set("User-Agent", opts.UserAgent)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	client := &http.Client{Timeout: timeout}

	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{URL: rawURL, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &Error{URL: rawURL, Message: fmt.Sprintf("unexpected status %s", resp.Status)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: rawURL, Message: "read response body", Cause: err}
	}

	dest := filepath.Join(dir, filename)
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", dest, err)
	}

	slog.Info("downloaded file", "url", rawURL, "dest", dest, "bytes", len(data))
	return dest, nil
}
