package uploads

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/modelhomeart/mhabackend/models"
)

// R2Uploader stores submission photos in a Cloudflare R2 bucket through the
// S3-compatible API. Public URLs use the domain set via R2_PUBLIC_DOMAIN
// (a custom domain or the r2.dev URL enabled in the bucket settings).
type R2Uploader struct {
	s3     *s3.Client
	bucket string
	domain string
}

func NewR2Uploader(ctx context.Context) (*R2Uploader, error) {
	bucket := os.Getenv("R2_BUCKET")
	accessKey := os.Getenv("R2_ACCESS_KEY_ID")
	secretKey := os.Getenv("R2_SECRET_ACCESS_KEY")
	endpoint := os.Getenv("R2_ENDPOINT") // https://<account-id>.r2.cloudflarestorage.com

	if bucket == "" || accessKey == "" || secretKey == "" || endpoint == "" {
		return nil, fmt.Errorf("missing R2 env vars (R2_BUCKET, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_ENDPOINT)")
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("r2 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true // required for R2
	})

	return &R2Uploader{
		s3:     client,
		bucket: bucket,
		domain: strings.TrimRight(os.Getenv("R2_PUBLIC_DOMAIN"), "/"),
	}, nil
}

func (u *R2Uploader) Upload(ctx context.Context, prefix string, img Image) (*models.ImageAttachment, error) {
	name := objectName(prefix, img)

	_, err := u.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(u.bucket),
		Key:          aws.String(name),
		Body:         bytes.NewReader(img.Data),
		ContentType:  aws.String(img.ContentType),
		CacheControl: aws.String("no-cache"),
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", img.FileName, err)
	}

	return &models.ImageAttachment{
		URL:        fmt.Sprintf("%s/%s/%s", u.domain, u.bucket, name),
		ObjectName: name,
		MimeType:   img.ContentType,
		SizeBytes:  img.Size(),
		FileName:   img.FileName,
	}, nil
}
