package uploads

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
	"github.com/modelhomeart/mhabackend/models"
	"google.golang.org/api/option"
)

// GCSUploader stores submission photos in a Google Cloud Storage bucket.
type GCSUploader struct {
	client *storage.Client
	bucket string
}

func NewGCSUploader(ctx context.Context) (*GCSUploader, error) {
	bucket := os.Getenv("GCS_BUCKET")
	credentialsPath := os.Getenv("CREDENTIALS_FILE_LOCATION")
	if bucket == "" || credentialsPath == "" {
		return nil, fmt.Errorf("missing GCS env vars (GCS_BUCKET, CREDENTIALS_FILE_LOCATION)")
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	client, err := storage.NewClient(ctx, option.WithCredentialsFile(filepath.Join(wd, credentialsPath)))
	if err != nil {
		return nil, fmt.Errorf("gcs client: %w", err)
	}

	return &GCSUploader{client: client, bucket: bucket}, nil
}

func (u *GCSUploader) Upload(ctx context.Context, prefix string, img Image) (*models.ImageAttachment, error) {
	name := objectName(prefix, img)

	w := u.client.Bucket(u.bucket).Object(name).NewWriter(ctx)
	w.ContentType = img.ContentType
	w.CacheControl = "no-cache"

	if _, err := io.Copy(w, bytes.NewReader(img.Data)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("upload copy: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("upload close: %w", err)
	}

	return &models.ImageAttachment{
		URL:        fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucket, name),
		ObjectName: name,
		MimeType:   img.ContentType,
		SizeBytes:  img.Size(),
		FileName:   img.FileName,
	}, nil
}
