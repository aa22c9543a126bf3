// Package export snapshots the aggregated site content and its media files
// into a static JSON document plus a media folder for frontend deployment.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"portfolioapi/internal/logging"
	"portfolioapi/internal/service"
	"portfolioapi/internal/storage"
)

// Source identifies this tool in the exported meta block.
const Source = "portal-export"

// Options configures a single export run.
type Options struct {
	// BaseURL is passed to the aggregator as the absolute origin of file URLs.
	BaseURL string
	// MediaPrefix is the URL path under which stored media is served, e.g. "/media/".
	// Empty means stored media has no stable path and nothing is rewritten.
	MediaPrefix string
	// PublicPrefix replaces MediaPrefix in rewritten URLs, e.g. "/published-media/".
	PublicPrefix   string
	OutputJSON     string
	OutputMediaDir string
}

// Result summarizes an export run.
type Result struct {
	OutputJSON string
	Copied     int
	Missing    int
	Rewritten  int
}

// Exporter writes static snapshots of the published content.
type Exporter struct {
	content service.ContentService
	store   storage.Storage
	log     logging.Logger
	now     func() time.Time
}

func NewExporter(content service.ContentService, store storage.Storage, log logging.Logger) *Exporter {
	return &Exporter{content: content, store: store, log: log.With("component", "export"), now: time.Now}
}

// Run builds the document, copies every referenced media file once and writes the JSON snapshot.
func (e *Exporter) Run(ctx context.Context, opt Options) (*Result, error) {
	if opt.OutputJSON == "" || opt.OutputMediaDir == "" {
		return nil, fmt.Errorf("output json and media dir are required")
	}
	if opt.MediaPrefix != "" {
		opt.MediaPrefix = withSlash(opt.MediaPrefix, "")
	}
	opt.PublicPrefix = withSlash(opt.PublicPrefix, "/published-media/")

	doc, err := e.content.Build(ctx, opt.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to load content: %w", err)
	}

	tree, err := toTree(doc)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opt.OutputMediaDir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}

	run := &exportRun{
		Exporter: e,
		opt:      opt,
		copied:   make(map[string]bool),
		res:      &Result{OutputJSON: opt.OutputJSON},
	}
	out, err := run.walk(ctx, tree)
	if err != nil {
		return nil, err
	}

	root, ok := out.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected document shape %T", out)
	}
	root["meta"] = map[string]any{
		"generated_at": e.now().Format(time.RFC3339),
		"source":       Source,
	}

	if err := writeJSON(opt.OutputJSON, root); err != nil {
		return nil, err
	}

	e.log.Info(ctx, "export_finished",
		"output_json", opt.OutputJSON,
		"output_media_dir", opt.OutputMediaDir,
		"copied", run.res.Copied,
		"missing", run.res.Missing,
		"rewritten", run.res.Rewritten,
	)
	return run.res, nil
}

type exportRun struct {
	*Exporter
	opt    Options
	copied map[string]bool
	res    *Result
}

func (r *exportRun) walk(ctx context.Context, v any) (any, error) {
	switch x := v.(type) {
	case map[string]any:
		for k, item := range x {
			nv, err := r.walk(ctx, item)
			if err != nil {
				return nil, err
			}
			x[k] = nv
		}
		return x, nil
	case []any:
		for i, item := range x {
			nv, err := r.walk(ctx, item)
			if err != nil {
				return nil, err
			}
			x[i] = nv
		}
		return x, nil
	case string:
		return r.remap(ctx, x)
	default:
		return v, nil
	}
}

// remap rewrites a media URL to its published location, copying the file on first sight.
func (r *exportRun) remap(ctx context.Context, value string) (string, error) {
	if r.opt.MediaPrefix == "" {
		return value, nil
	}
	rel, ok := relativeMediaPath(value, r.opt.MediaPrefix)
	if !ok {
		return value, nil
	}
	key, err := storage.CleanKey(rel)
	if err != nil {
		return value, nil
	}

	dest := filepath.Join(r.opt.OutputMediaDir, filepath.FromSlash(key))
	if !r.copied[dest] {
		err := r.copy(ctx, key, dest)
		if errors.Is(err, storage.ErrNotFound) {
			r.res.Missing++
			r.log.Warn(ctx, "export_media_missing", "key", key)
			return value, nil
		}
		if err != nil {
			return "", fmt.Errorf("copy %s: %w", key, err)
		}
		r.copied[dest] = true
		r.res.Copied++
	}

	r.res.Rewritten++
	return r.opt.PublicPrefix + key, nil
}

func (r *exportRun) copy(ctx context.Context, key, dest string) error {
	rc, info, err := r.store.Get(ctx, key)
	if err != nil {
		return err
	}
	defer rc.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, rc); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if !info.LastModified.IsZero() {
		_ = os.Chtimes(dest, info.LastModified, info.LastModified)
	}
	return nil
}

// relativeMediaPath returns the part of value's path after prefix, without leading slashes.
func relativeMediaPath(value, prefix string) (string, bool) {
	if value == "" {
		return "", false
	}
	p := value
	if u, err := url.Parse(value); err == nil {
		p = u.Path
	}
	if !strings.HasPrefix(p, prefix) {
		return "", false
	}
	rel := strings.TrimLeft(strings.TrimPrefix(p, prefix), "/")
	if rel == "" {
		return "", false
	}
	return rel, true
}

func withSlash(s, def string) string {
	if s == "" {
		return def
	}
	return strings.TrimRight(s, "/") + "/"
}

// toTree round-trips v through JSON so the walker sees plain maps and slices.
func toTree(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return out, nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
