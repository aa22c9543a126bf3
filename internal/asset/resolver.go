// Package asset turns stored file references into absolute, optionally
// cache-busted URLs for the public API.
package asset

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"portfolioapi/internal/storage"
)

// Resolver builds public URLs for storage keys. Resolution never fails loudly:
// any problem degrades to the empty string.
type Resolver struct {
	store storage.Storage
}

func NewResolver(store storage.Storage) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the absolute URL of key against base with an optional v=<version>
// query parameter. An empty key or any resolution error yields "".
func (r *Resolver) Resolve(ctx context.Context, base, key, version string) string {
	if strings.TrimSpace(key) == "" {
		return ""
	}
	raw, err := r.store.URL(ctx, key)
	if err != nil || raw == "" {
		return ""
	}
	abs, ok := absolute(base, raw)
	if !ok {
		return ""
	}
	return WithVersion(abs, version)
}

// WithVersion appends v=<version>, joining with & when the URL already has a query.
func WithVersion(u, version string) string {
	if version == "" {
		return u
	}
	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + "v=" + url.QueryEscape(version)
}

// VersionToken renders t as an epoch-seconds cache-busting token.
func VersionToken(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return strconv.FormatInt(t.Unix(), 10)
}

func absolute(base, raw string) (string, bool) {
	ref, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if ref.IsAbs() || base == "" {
		return ref.String(), true
	}
	b, err := url.Parse(base)
	if err != nil || b.Scheme == "" || b.Host == "" {
		return "", false
	}
	return b.ResolveReference(ref).String(), true
}
