// Package kaggle downloads hosted datasets from the Kaggle API into a
// local cache.
package kaggle

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mateo/datagrab/archive"
	"github.com/mateo/datagrab/download"
)

// DefaultBaseURL is the public Kaggle API endpoint.
const DefaultBaseURL = "https://www.kaggle.com/api/v1"

// defaultTimeout bounds a dataset download. Dataset archives can be
// large, so it is far longer than the general download default.
const defaultTimeout = 5 * time.Minute

// datasetPrefix is the web URL prefix accepted in place of a bare
// owner/name handle.
const datasetPrefix = "https://www.kaggle.com/datasets/"

// ErrInvalidHandle reports a dataset handle that is not of the form
// owner/name.
var ErrInvalidHandle = errors.New("invalid dataset handle")

// Client downloads datasets and caches the extracted files locally.
type Client struct {
	baseURL  string
	cacheDir string
	creds    *Credentials
	logger   *slog.Logger
	timeout  time.Duration
}

// ClientConfig overrides Client defaults. The zero value of every field
// selects the default.
type ClientConfig struct {
	BaseURL  string
	CacheDir string
	// Credentials overrides credential resolution. A pointer to the zero
	// value forces anonymous access.
	Credentials *Credentials
	Logger      *slog.Logger
	Timeout     time.Duration
}

// NewClient builds a Client from cfg. A nil cfg selects all defaults:
// the public API endpoint, a per-user cache directory, credentials
// resolved from the environment or kaggle.json, and a five minute
// download timeout.
func NewClient(cfg *ClientConfig) (*Client, error) {
	if cfg == nil {
		cfg = &ClientConfig{}
	}

	c := &Client{
		baseURL:  cfg.BaseURL,
		cacheDir: cfg.CacheDir,
		creds:    cfg.Credentials,
		logger:   cfg.Logger,
		timeout:  cfg.Timeout,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.cacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve cache directory: %w", err)
		}
		c.cacheDir = filepath.Join(base, "datagrab", "kaggle")
	}
	if c.creds == nil {
		creds, err := ResolveCredentials()
		if err != nil {
			return nil, err
		}
		c.creds = creds
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.timeout == 0 {
		c.timeout = defaultTimeout
	}
	return c, nil
}

// DatasetDownload downloads the dataset named by handle ("owner/name",
// or the dataset's web URL) and returns the directory holding its
// extracted files. Completed downloads are cached: subsequent calls for
// the same handle return the cached directory without touching the
// network.
func (c *Client) DatasetDownload(ctx context.Context, handle string) (string, error) {
	owner, name, err := splitHandle(handle)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(c.cacheDir, "datasets", owner, name)
	marker := dir + ".complete"
	if _, err := os.Stat(marker); err == nil {
		c.logger.Info("dataset cache hit", "handle", owner+"/"+name, "dir", dir)
		return dir, nil
	}

	endpoint := fmt.Sprintf("%s/datasets/download/%s/%s", c.baseURL, owner, name)
	opts := &download.Options{
		Timeout:   c.timeout,
		UserAgent: download.DefaultUserAgent,
		Filename:  name + ".zip",
		Headers:   c.authHeader(),
	}
	zipPath, err := download.File(ctx, endpoint, filepath.Join(c.cacheDir, "datasets", owner), opts)
	if err != nil {
		return "", err
	}

	if _, err := archive.ExtractZip(zipPath, dir); err != nil {
		return "", err
	}
	if err := os.Remove(zipPath); err != nil {
		return "", fmt.Errorf("remove archive %s: %w", zipPath, err)
	}
	stamp := time.Now().UTC().Format(time.RFC3339) + "\n"
	if err := os.WriteFile(marker, []byte(stamp), 0o644); err != nil {
		return "", fmt.Errorf("write cache marker: %w", err)
	}

	c.logger.Info("dataset downloaded", "handle", owner+"/"+name, "dir", dir)
	return dir, nil
}

// splitHandle parses an owner/name handle, accepting the dataset web
// URL form as well.
func splitHandle(handle string) (owner, name string, err error) {
	h := strings.TrimPrefix(handle, datasetPrefix)
	h = strings.Trim(h, "/")
	parts := strings.Split(h, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("handle %q: %w (want owner/name)", handle, ErrInvalidHandle)
	}
	return parts[0], parts[1], nil
}

// authHeader builds the basic-auth header for configured credentials.
// Anonymous clients send no header.
func (c *Client) authHeader() map[string]string {
	if !c.creds.complete() {
		return nil
	}
	token := base64.StdEncoding.EncodeToString([]byte(c.creds.Username + ":" + c.creds.Key))
	return map[string]string{"Authorization": "Basic " + token}
}
