// Package imagecache downloads remote seed images and keeps them on disk so
// the same URL is fetched once.
package imagecache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jmylchreest/hueseed/internal/security"
	httputil "github.com/jmylchreest/hueseed/internal/util/http"
)

// CacheOptions configures image caching behaviour.
type CacheOptions struct {
	// CacheDir is the directory where images are cached.
	// If empty, defaults to DefaultCacheDir.
	CacheDir string

	// Filename is the filename to use for the cached image.
	// If empty, a hash of the URL plus its extension is used.
	Filename string

	// AllowOverwrite downloads again even when a cached copy exists.
	AllowOverwrite bool

	// AllowPrivateHosts permits plain HTTP and local or private hosts.
	AllowPrivateHosts bool

	// Fetch configures the download.
	Fetch httputil.FetchOptions
}

// IsRemote reports whether path is an HTTP(S) URL rather than a local path.
func IsRemote(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// DefaultCacheDir returns the default cache directory path.
func DefaultCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		return filepath.Join(home, ".cache", "hueseed", "images"), nil
	}
	return filepath.Join(cacheDir, "hueseed", "images"), nil
}

// Validate checks that rawURL may be downloaded under opts.
func Validate(rawURL string, opts CacheOptions) error {
	if opts.AllowPrivateHosts {
		return security.ValidateHTTPURLAllowPrivate(rawURL)
	}
	return security.ValidateHTTPURL(rawURL)
}

// generateFilename derives a stable filename from the URL hash and the
// extension of its path, ignoring any query string.
func generateFilename(rawURL string) string {
	hash := sha256.Sum256([]byte(rawURL))

	ext := ""
	if u, err := url.Parse(rawURL); err == nil {
		ext = strings.ToLower(path.Ext(u.Path))
	}
	if ext == "" || len(ext) > 5 {
		ext = ".img"
	}
	return fmt.Sprintf("%x%s", hash[:16], ext)
}

// DownloadAndCache downloads a remote image into the cache directory and
// returns the local path. A cached copy is reused unless AllowOverwrite is set.
func DownloadAndCache(ctx context.Context, rawURL string, opts CacheOptions) (string, error) {
	if err := Validate(rawURL, opts); err != nil {
		return "", fmt.Errorf("invalid image URL: %w", err)
	}

	cacheDir := opts.CacheDir
	if cacheDir == "" {
		defaultDir, err := DefaultCacheDir()
		if err != nil {
			return "", err
		}
		cacheDir = defaultDir
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil { // #nosec G301 -- cache directory needs standard permissions
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	filename := opts.Filename
	if filename == "" {
		filename = generateFilename(rawURL)
	}
	cachedPath := filepath.Join(cacheDir, filename)

	if !opts.AllowOverwrite {
		if _, err := os.Stat(cachedPath); err == nil {
			return cachedPath, nil
		}
	}

	data, err := httputil.Fetch(ctx, rawURL, opts.Fetch)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}

	// Write then rename so an interrupted download never looks cached.
	tmp, err := os.CreateTemp(cacheDir, filename+".*.part")
	if err != nil {
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}
	if err := os.Rename(tmp.Name(), cachedPath); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}

	return cachedPath, nil
}
