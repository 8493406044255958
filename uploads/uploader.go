package uploads

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/modelhomeart/mhabackend/models"
	"github.com/modelhomeart/mhabackend/utils"
)

// Uploader writes a submitted photo to durable object storage and returns
// its stored reference. A nil Uploader means storage is not configured and
// records fall back to placeholder image strings.
type Uploader interface {
	Upload(ctx context.Context, prefix string, img Image) (*models.ImageAttachment, error)
}

// FromEnv selects a storage backend from STORAGE_BACKEND ("gcs", "r2" or
// empty). An empty value disables durable image storage without error.
func FromEnv(ctx context.Context) (Uploader, error) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE_BACKEND"))) {
	case "":
		return nil, nil
	case "gcs":
		return NewGCSUploader(ctx)
	case "r2":
		return NewR2Uploader(ctx)
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", os.Getenv("STORAGE_BACKEND"))
	}
}

// objectName builds a unique object key under prefix, keeping a slugified
// trace of the original filename so stored objects stay recognizable.
func objectName(prefix string, img Image) string {
	base := strings.TrimSuffix(img.FileName, filepath.Ext(img.FileName))
	slug := utils.GenerateSlug(base)
	if slug == "" {
		slug = "image"
	}
	return fmt.Sprintf("%s/%d-%s-%s%s", prefix, time.Now().UTC().Unix(), uuid.New().String(), slug, img.Ext())
}
