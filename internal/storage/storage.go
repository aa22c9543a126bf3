package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"
)

// Package storage contains file/object storage abstractions for uploaded media.
// Stored records keep only the object key; URLs are derived on read.

var (
	// ErrNotFound is returned by Get when no object exists under the key.
	ErrNotFound = errors.New("object not found")
	// ErrInvalidKey is returned for keys that are empty, absolute, or escape the storage root.
	ErrInvalidKey = errors.New("invalid object key")
)

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the file-storage layer behind media fields.
type Storage interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// URL returns a retrievable URL for the object. It may be relative to the site root.
	URL(ctx context.Context, key string) (string, error)
}

// CleanKey normalizes a slash-separated key and rejects keys that could escape the root.
func CleanKey(key string) (string, error) {
	k := strings.ReplaceAll(strings.TrimSpace(key), "\\", "/")
	if k == "" || strings.HasPrefix(k, "/") {
		return "", ErrInvalidKey
	}
	k = path.Clean(k)
	if k == "." || k == ".." || strings.HasPrefix(k, "../") {
		return "", ErrInvalidKey
	}
	return k, nil
}
