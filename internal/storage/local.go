package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// localStorage keeps media on the local filesystem under root and publishes it under baseURL.
type localStorage struct {
	root    string
	baseURL string
}

// NewLocal creates a filesystem-backed Storage. baseURL is the public prefix the
// files are served under (e.g. "/media/").
func NewLocal(root, baseURL string) (Storage, error) {
	if root == "" {
		return nil, fmt.Errorf("media root is required")
	}
	if baseURL == "" {
		return nil, fmt.Errorf("media url is required")
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &localStorage{root: root, baseURL: baseURL}, nil
}

func (l *localStorage) path(key string) (string, string, error) {
	k, err := CleanKey(key)
	if err != nil {
		return "", "", err
	}
	return k, filepath.Join(l.root, filepath.FromSlash(k)), nil
}

// Put writes the object to disk, creating parent directories.
func (l *localStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	k, p, err := l.path(key)
	if err != nil {
		return ObjectInfo{}, err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return ObjectInfo{}, err
	}
	f, err := os.Create(p)
	if err != nil {
		return ObjectInfo{}, err
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return ObjectInfo{}, err
	}
	st, err := os.Stat(p)
	if err != nil {
		return ObjectInfo{}, err
	}
	return ObjectInfo{
		Key:          k,
		Size:         n,
		ContentType:  opt.ContentType,
		LastModified: st.ModTime(),
		Metadata:     opt.Metadata,
	}, nil
}

// Get opens the file for reading.
func (l *localStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	k, p, err := l.path(key)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ObjectInfo{}, ErrNotFound
		}
		return nil, ObjectInfo{}, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, err
	}
	if st.IsDir() {
		f.Close()
		return nil, ObjectInfo{}, ErrNotFound
	}
	info := ObjectInfo{
		Key:          k,
		Size:         st.Size(),
		ContentType:  mime.TypeByExtension(filepath.Ext(p)),
		LastModified: st.ModTime(),
	}
	return f, info, nil
}

// URL joins the public media prefix with the escaped key.
func (l *localStorage) URL(ctx context.Context, key string) (string, error) {
	k, err := CleanKey(key)
	if err != nil {
		return "", err
	}
	return l.baseURL + (&url.URL{Path: k}).EscapedPath(), nil
}
