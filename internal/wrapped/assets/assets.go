// Package assets resolves public image and audio paths with fallback.
//
// Paths are root-relative names such as "images/thankyou.jpg". A resolver
// checks them against the public asset tree so screens can render a
// placeholder instead of a broken image, and builds the URL a browser should
// fetch: served locally, or from a CDN base when one is configured.
package assets

import (
	"errors"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strings"
)

// ErrPathRequired is returned when an empty asset path is resolved.
var ErrPathRequired = errors.New("asset path is required")

// Resolver looks up public assets.
type Resolver struct {
	files   fs.FS
	baseURL string
}

// New returns a resolver over files. A non-empty baseURL makes URL return
// absolute CDN URLs instead of root-relative ones.
func New(files fs.FS, baseURL string) *Resolver {
	return &Resolver{
		files:   files,
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}
}

// Image is the outcome of resolving one image slot.
type Image struct {
	Path        string
	URL         string
	Placeholder bool
}

// Image returns the first candidate that exists. When none exists the result
// is a placeholder. Lookups are case-sensitive.
func (r *Resolver) Image(candidates ...string) Image {
	for _, candidate := range candidates {
		clean, ok := cleanPath(candidate)
		if !ok {
			continue
		}
		if !r.Exists(clean) {
			continue
		}
		resolved, err := r.URL(clean)
		if err != nil {
			continue
		}
		return Image{Path: clean, URL: resolved}
	}
	return Image{Placeholder: true}
}

// Exists reports whether path names a regular file. The final element must
// match a directory entry exactly, so "a.JPG" does not resolve "a.jpg" even
// on case-insensitive filesystems.
func (r *Resolver) Exists(name string) bool {
	if r == nil || r.files == nil {
		return false
	}
	clean, ok := cleanPath(name)
	if !ok {
		return false
	}
	entries, err := fs.ReadDir(r.files, path.Dir(clean))
	if err != nil {
		return false
	}
	base := path.Base(clean)
	for _, entry := range entries {
		if entry.Name() == base {
			return entry.Type().IsRegular()
		}
	}
	return false
}

// URL returns the browser URL for name.
func (r *Resolver) URL(name string) (string, error) {
	clean, ok := cleanPath(name)
	if !ok {
		return "", ErrPathRequired
	}
	if r == nil || r.baseURL == "" {
		return "/" + clean, nil
	}
	return url.JoinPath(r.baseURL, strings.Split(clean, "/")...)
}

// Handler serves the asset tree at root-relative paths.
func (r *Resolver) Handler() http.Handler {
	if r == nil || r.files == nil {
		return http.NotFoundHandler()
	}
	return http.FileServerFS(r.files)
}

func cleanPath(name string) (string, bool) {
	name = strings.TrimSpace(name)
	name = strings.TrimLeft(name, "/")
	if name == "" {
		return "", false
	}
	clean := path.Clean(name)
	if !fs.ValidPath(clean) || clean == "." {
		return "", false
	}
	return clean, true
}
