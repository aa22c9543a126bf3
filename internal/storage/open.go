package storage

import (
	"fmt"
	"net/url"
	"strings"

	"portfolioapi/internal/config"
)

// Open builds the storage driver selected by media.Driver.
func Open(media config.MediaConfig, mc config.MinIOConfig) (Storage, error) {
	switch media.Driver {
	case "", "local":
		return NewLocal(media.Root, media.URL)
	case "minio":
		return NewMinIO(mc)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", media.Driver)
	}
}

// PathPrefix is the URL path under which the selected driver's object URLs live.
// Presigned MinIO URLs have no stable prefix, so it is empty unless a public URL is set.
func PathPrefix(media config.MediaConfig, mc config.MinIOConfig) string {
	raw := media.URL
	if media.Driver == "minio" {
		if mc.PublicURL == "" {
			return ""
		}
		raw = mc.PublicURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.TrimRight(u.Path, "/") + "/"
}
