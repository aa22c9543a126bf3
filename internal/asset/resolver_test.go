package asset

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolioapi/internal/storage"
	storeMocks "portfolioapi/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	base := "http://portal.example:8080"

	tests := []struct {
		name    string
		key     string
		version string
		setup   func(m *storeMocks.MockStorage)
		want    string
	}{
		{
			name: "empty key yields empty url without touching storage",
			key:  "",
			want: "",
		},
		{
			name: "relative url made absolute",
			key:  "assets/a.png",
			setup: func(m *storeMocks.MockStorage) {
				m.On("URL", ctx, "assets/a.png").Return("/media/assets/a.png", nil)
			},
			want: "http://portal.example:8080/media/assets/a.png",
		},
		{
			name:    "version appended with question mark",
			key:     "profile/images/me.jpg",
			version: "1700000000",
			setup: func(m *storeMocks.MockStorage) {
				m.On("URL", ctx, "profile/images/me.jpg").Return("/media/profile/images/me.jpg", nil)
			},
			want: "http://portal.example:8080/media/profile/images/me.jpg?v=1700000000",
		},
		{
			name:    "version joined with ampersand on existing query",
			key:     "cv.pdf",
			version: "42",
			setup: func(m *storeMocks.MockStorage) {
				m.On("URL", ctx, "cv.pdf").Return("https://s3.example/bucket/cv.pdf?X-Amz-Signature=abc", nil)
			},
			want: "https://s3.example/bucket/cv.pdf?X-Amz-Signature=abc&v=42",
		},
		{
			name: "unresolvable reference degrades to empty string",
			key:  "../../etc/passwd",
			setup: func(m *storeMocks.MockStorage) {
				m.On("URL", ctx, "../../etc/passwd").Return("", storage.ErrInvalidKey)
			},
			want: "",
		},
		{
			name: "storage failure degrades to empty string",
			key:  "assets/b.png",
			setup: func(m *storeMocks.MockStorage) {
				m.On("URL", ctx, "assets/b.png").Return("", errors.New("presign failed"))
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(storeMocks.MockStorage)
			if tt.setup != nil {
				tt.setup(m)
			}
			r := NewResolver(m)
			assert.Equal(t, tt.want, r.Resolve(ctx, base, tt.key, tt.version))
			m.AssertExpectations(t)
			if tt.setup == nil {
				m.AssertNotCalled(t, "URL", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestResolver_InvalidBase(t *testing.T) {
	ctx := context.Background()
	m := new(storeMocks.MockStorage)
	m.On("URL", ctx, "a.png").Return("/media/a.png", nil)

	r := NewResolver(m)
	assert.Equal(t, "", r.Resolve(ctx, "not a base", "a.png", ""))
	assert.Equal(t, "/media/a.png", r.Resolve(ctx, "", "a.png", ""))
}

func TestResolver_WithLocalStorage(t *testing.T) {
	store, err := storage.NewLocal(t.TempDir(), "/media/")
	require.NoError(t, err)
	r := NewResolver(store)

	got := r.Resolve(context.Background(), "https://site.example", "publications/documents/paper.pdf", "")
	assert.Equal(t, "https://site.example/media/publications/documents/paper.pdf", got)
	assert.Equal(t, "", r.Resolve(context.Background(), "https://site.example", "/abs/path.pdf", ""))
}

func TestVersionToken(t *testing.T) {
	assert.Equal(t, "", VersionToken(time.Time{}))
	assert.Equal(t, "1700000000", VersionToken(time.Unix(1700000000, 500).UTC()))
}

func TestWithVersion(t *testing.T) {
	assert.Equal(t, "/a.png", WithVersion("/a.png", ""))
	assert.Equal(t, "/a.png?v=1", WithVersion("/a.png", "1"))
	assert.Equal(t, "/a.png?x=y&v=1", WithVersion("/a.png?x=y", "1"))
}
