package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    string
		wantErr bool
	}{
		{name: "simple", key: "assets/a.png", want: "assets/a.png"},
		{name: "normalizes dots", key: "assets/./x/../a.png", want: "assets/a.png"},
		{name: "backslashes", key: `profile\images\me.jpg`, want: "profile/images/me.jpg"},
		{name: "empty", key: "  ", wantErr: true},
		{name: "absolute", key: "/etc/passwd", wantErr: true},
		{name: "escapes root", key: "../secret.txt", wantErr: true},
		{name: "escapes after clean", key: "a/../../b", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanKey(tt.key)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLocal_Validation(t *testing.T) {
	_, err := NewLocal("", "/media/")
	assert.Error(t, err)
	_, err = NewLocal(t.TempDir(), "")
	assert.Error(t, err)
}

func TestLocalStorage_PutGet(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocal(root, "/media")
	require.NoError(t, err)
	ctx := context.Background()

	info, err := store.Put(ctx, "assets/note.txt", strings.NewReader("hello"), PutObjectOptions{Size: 5, ContentType: "text/plain"})
	require.NoError(t, err)
	assert.Equal(t, "assets/note.txt", info.Key)
	assert.Equal(t, int64(5), info.Size)

	onDisk, err := os.ReadFile(filepath.Join(root, "assets", "note.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(onDisk))

	rc, got, err := store.Get(ctx, "assets/note.txt")
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))
	assert.Equal(t, int64(5), got.Size)
	assert.False(t, got.LastModified.IsZero())
}

func TestLocalStorage_GetMissing(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "/media/")
	require.NoError(t, err)

	_, _, err = store.Get(context.Background(), "assets/missing.png")
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = store.Get(context.Background(), "../outside.png")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestLocalStorage_URL(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "/media/")
	require.NoError(t, err)
	ctx := context.Background()

	u, err := store.URL(ctx, "profile/images/hero shot.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/media/profile/images/hero%20shot.jpg", u)

	_, err = store.URL(ctx, "../../etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidKey)
}
